package chat

import (
	"log/slog"
	"sync"
)

// Countdown is the process-wide lobby counter.
type Countdown struct {
	mu        sync.Mutex
	duration  int
	remaining int
}

// NewCountdown starts a countdown at duration.
func NewCountdown(duration int) *Countdown {
	return &Countdown{duration: duration, remaining: duration}
}

// Remaining returns the current value.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Step decrements the counter and returns the value for this tick. When that
// value is zero or below the counter restarts at the full duration and wrapped
// is true, so the counter is never observed at zero.
func (c *Countdown) Step() (value int, wrapped bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remaining--
	value = c.remaining
	if value <= 0 {
		c.remaining = c.duration
		return value, true
	}
	return value, false
}

// Lobby drives the countdown and clears lobby history at the end of each
// cycle.
type Lobby struct {
	countdown *Countdown
	rooms     *Rooms
	bc        *Broadcaster
	log       *slog.Logger
	metrics   Metrics
}

// NewLobby ties the countdown to the lobby room in rooms.
func NewLobby(countdown *Countdown, rooms *Rooms, bc *Broadcaster, logger *slog.Logger, metrics Metrics) *Lobby {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Lobby{countdown: countdown, rooms: rooms, bc: bc, log: logger, metrics: metrics}
}

// Start registers the tick on sched.
func (l *Lobby) Start(sched *Scheduler, cfg Config) {
	interval := cfg.withDefaults().TickInterval
	sched.Every(interval, l.Tick)
	l.log.Info("Lobby timer started", "duration", l.countdown.duration, "interval", interval)
}

// Tick performs one countdown step.
func (l *Lobby) Tick() {
	value, wrapped := l.countdown.Step()
	l.bc.Broadcast(l.rooms.Members(LobbyRoom), LobbyTickFrame(value))
	if !wrapped {
		return
	}

	l.rooms.ResetHistory(LobbyRoom)
	l.bc.Broadcast(l.rooms.Members(LobbyRoom), FrameLobbyReset)
	l.metrics.LobbyReset()
	l.log.Info("Lobby history reset", "next_cycle", l.countdown.duration)
}

// Remaining returns the current countdown value.
func (l *Lobby) Remaining() int {
	return l.countdown.Remaining()
}
