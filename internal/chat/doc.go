// Package chat implements the room state machine behind the relay: the
// session registry, the room store with its history, the lobby countdown,
// deferred deletion of empty rooms and the dispatcher that turns incoming
// text frames into commands.
//
// The package knows nothing about sockets. A transport hands it connection
// lifecycle events through EventHandler and receives outgoing frames through
// Transport.
package chat
