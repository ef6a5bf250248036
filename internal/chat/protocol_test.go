package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Command
	}{
		{"login trims", "__login__  alice ", Command{CommandLogin, "alice"}},
		{"login empty", "__login__", Command{CommandLogin, ""}},
		{"create trims", "__create__ general\t", Command{CommandCreate, "general"}},
		{"join keeps spaces", "__join__ general ", Command{CommandJoin, " general "}},
		{"switch keeps spaces", "__switch__lobby", Command{CommandSwitch, "lobby"}},
		{"first prefix wins", "__login____create__x", Command{CommandLogin, "__create__x"}},
		{"prefix must lead", "hi __join__x", Command{CommandChat, "hi __join__x"}},
		{"outbound frame is chat", "__login_ok__", Command{CommandChat, "__login_ok__"}},
		{"plain text", "hello", Command{CommandChat, "hello"}},
		{"empty", "", Command{CommandChat, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.payload))
		})
	}
}

func TestFrames(t *testing.T) {
	assert.Equal(t, "__rooms__general,lobby", RoomsFrame([]string{"general", "lobby"}))
	assert.Equal(t, "__rooms__", RoomsFrame(nil))
	assert.Equal(t, "__lobby_tick__42", LobbyTickFrame(42))
	assert.Equal(t, "__lobby_tick__0", LobbyTickFrame(0))
	assert.Equal(t, "alice: hi", ChatLine("alice", "hi"))
}

func TestCommandKindString(t *testing.T) {
	assert.Equal(t, "login", CommandLogin.String())
	assert.Equal(t, "switch", CommandSwitch.String())
	assert.Equal(t, "chat", CommandChat.String())
}
