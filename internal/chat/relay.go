package chat

import (
	"context"
	"log/slog"
)

// Relay assembles the core components around a transport. It implements
// EventHandler through the embedded Dispatcher.
type Relay struct {
	*Dispatcher

	cfg      Config
	sched    *Scheduler
	sessions *Sessions
	rooms    *Rooms
	lobby    *Lobby
	log      *slog.Logger
}

// NewRelay builds a relay that sends through transport. Call Start to run the
// lobby countdown.
func NewRelay(ctx context.Context, transport Transport, cfg Config, logger *slog.Logger, metrics Metrics) *Relay {
	cfg = cfg.withDefaults()
	if metrics == nil {
		metrics = nopMetrics{}
	}

	sched := NewScheduler(ctx, logger)
	bc := NewBroadcaster(transport, logger, metrics)
	countdown := NewCountdown(cfg.LobbyDuration)
	sessions := NewSessions()
	rooms := NewRooms(cfg, sched, bc, countdown, logger, metrics)

	return &Relay{
		Dispatcher: NewDispatcher(cfg, sessions, rooms, bc, logger, metrics),
		cfg:        cfg,
		sched:      sched,
		sessions:   sessions,
		rooms:      rooms,
		lobby:      NewLobby(countdown, rooms, bc, logger, metrics),
		log:        logger,
	}
}

// Start launches the lobby countdown.
func (r *Relay) Start() {
	r.lobby.Start(r.sched, r.cfg)
}

// Stop halts the countdown and drops pending room deletions.
func (r *Relay) Stop() {
	r.sched.Stop()
	r.log.Info("Relay stopped")
}

// Rooms exposes the room store for read-only views such as the HTTP room list.
func (r *Relay) Rooms() *Rooms { return r.rooms }

// Sessions exposes the session registry.
func (r *Relay) Sessions() *Sessions { return r.sessions }

// Lobby exposes the lobby timer.
func (r *Relay) Lobby() *Lobby { return r.lobby }
