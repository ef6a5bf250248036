package chat

import (
	"strings"
	"time"
)

// Config holds the timing and naming knobs of the core.
type Config struct {
	// LobbyDuration is the number of ticks in one lobby cycle.
	LobbyDuration int
	// TickInterval is the lobby countdown period.
	TickInterval time.Duration
	// GraceWindow is how long an empty room survives before deletion.
	GraceWindow time.Duration
	// LobbyNameCaseSensitive restricts the reserved-name check on room
	// creation to the exact string "lobby".
	LobbyNameCaseSensitive bool
	// HistoryLimit caps each room's history. Zero keeps everything.
	HistoryLimit int
}

// DefaultConfig returns a 300 tick lobby cycle at one tick per second and a
// ten second grace window.
func DefaultConfig() Config {
	return Config{
		LobbyDuration: 300,
		TickInterval:  time.Second,
		GraceWindow:   10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LobbyDuration <= 0 {
		c.LobbyDuration = d.LobbyDuration
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.GraceWindow <= 0 {
		c.GraceWindow = d.GraceWindow
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	return c
}

// Creatable reports whether a client may create a room with this name.
func (c Config) Creatable(name string) bool {
	if name == "" {
		return false
	}
	if c.LobbyNameCaseSensitive {
		return name != LobbyRoom
	}
	return !strings.EqualFold(name, LobbyRoom)
}
