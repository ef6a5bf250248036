// Package server is the WebSocket side of the relay.
//
// The Hub owns the open connections and implements chat.Transport, each
// Client runs its own read and write pumps, and the Service ties the hub, the
// chat relay, metrics and the HTTP routes together. Configuration, origin
// checks and per-connection rate limiting live here as well, so the chat
// package only ever sees connection IDs and text.
package server
