package chat

import (
	"strconv"
	"strings"
)

// LobbyRoom is the permanent room every client lands in after login.
const LobbyRoom = "lobby"

const (
	prefixLogin  = "__login__"
	prefixCreate = "__create__"
	prefixJoin   = "__join__"
	prefixSwitch = "__switch__"

	prefixRooms     = "__rooms__"
	prefixLobbyTick = "__lobby_tick__"

	// FrameLoginOK acknowledges a login command.
	FrameLoginOK = "__login_ok__"
	// FrameLobbyReset tells lobby members that history was cleared.
	FrameLobbyReset = "__lobby_reset__"
)

// CommandKind tags a parsed inbound frame.
type CommandKind int

const (
	CommandChat CommandKind = iota
	CommandLogin
	CommandCreate
	CommandJoin
	CommandSwitch
)

func (k CommandKind) String() string {
	switch k {
	case CommandLogin:
		return "login"
	case CommandCreate:
		return "create"
	case CommandJoin:
		return "join"
	case CommandSwitch:
		return "switch"
	default:
		return "chat"
	}
}

// Command is an inbound frame reduced to its kind and argument.
type Command struct {
	Kind CommandKind
	Arg  string
}

var commandPrefixes = []struct {
	prefix string
	kind   CommandKind
	trim   bool
}{
	{prefixLogin, CommandLogin, true},
	{prefixCreate, CommandCreate, true},
	{prefixJoin, CommandJoin, false},
	{prefixSwitch, CommandSwitch, false},
}

// ParseCommand matches payload against the command prefixes in priority
// order. Anything without a known prefix is a chat message carrying the raw
// payload. Login and create arguments are trimmed, join and switch are not.
func ParseCommand(payload string) Command {
	for _, p := range commandPrefixes {
		if rest, ok := strings.CutPrefix(payload, p.prefix); ok {
			if p.trim {
				rest = strings.TrimSpace(rest)
			}
			return Command{Kind: p.kind, Arg: rest}
		}
	}
	return Command{Kind: CommandChat, Arg: payload}
}

// RoomsFrame renders the room list notification.
func RoomsFrame(names []string) string {
	return prefixRooms + strings.Join(names, ",")
}

// LobbyTickFrame renders the countdown notification.
func LobbyTickFrame(remaining int) string {
	return prefixLobbyTick + strconv.Itoa(remaining)
}

// ChatLine is the form a chat message takes in history and on the wire.
func ChatLine(name, text string) string {
	return name + ": " + text
}
