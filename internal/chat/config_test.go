package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreatable(t *testing.T) {
	insensitive := Config{}
	sensitive := Config{LobbyNameCaseSensitive: true}

	tests := []struct {
		name      string
		room      string
		want      bool
		sensitive bool
	}{
		{"empty rejected", "", false, false},
		{"lobby rejected", "lobby", false, false},
		{"mixed case lobby rejected", "Lobby", false, false},
		{"upper lobby rejected", "LOBBY", false, false},
		{"regular room", "general", true, false},
		{"empty rejected when sensitive", "", false, true},
		{"lobby rejected when sensitive", "lobby", false, true},
		{"mixed case allowed when sensitive", "Lobby", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := insensitive
			if tt.sensitive {
				cfg = sensitive
			}
			assert.Equal(t, tt.want, cfg.Creatable(tt.room))
		})
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{HistoryLimit: -4}.withDefaults()

	assert.Equal(t, 300, cfg.LobbyDuration)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 10*time.Second, cfg.GraceWindow)
	assert.Zero(t, cfg.HistoryLimit)
}
