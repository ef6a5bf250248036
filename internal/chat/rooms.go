package chat

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type room struct {
	mu      sync.Mutex
	members map[ConnID]struct{}
	history []string
}

func newRoom() *room {
	return &room{members: make(map[ConnID]struct{})}
}

func (r *room) memberSnapshot() []ConnID {
	return lo.Keys(r.members)
}

// Rooms owns room membership, history and lifecycle. The lobby is created
// up front and is never deleted.
//
// Lock order is Rooms.mu, then room.mu, then the scheduler's lock. userMu is
// a leaf lock.
type Rooms struct {
	cfg       Config
	sched     *Scheduler
	bc        *Broadcaster
	countdown *Countdown
	log       *slog.Logger
	metrics   Metrics

	mu    sync.RWMutex
	rooms map[string]*room

	userMu   sync.RWMutex
	userRoom map[ConnID]string
}

// NewRooms creates a store holding only the lobby.
func NewRooms(cfg Config, sched *Scheduler, bc *Broadcaster, countdown *Countdown, logger *slog.Logger, metrics Metrics) *Rooms {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	s := &Rooms{
		cfg:       cfg.withDefaults(),
		sched:     sched,
		bc:        bc,
		countdown: countdown,
		log:       logger,
		metrics:   metrics,
		rooms:     map[string]*room{LobbyRoom: newRoom()},
		userRoom:  make(map[ConnID]string),
	}
	metrics.RoomsChanged(1)
	return s
}

// ensureLocked returns the room called name, creating it if needed, and
// cancels any pending deletion. Callers hold s.mu for writing.
func (s *Rooms) ensureLocked(name string) (*room, bool) {
	if s.sched.Cancel(name) {
		s.log.Debug("Room revived before deletion", "room", name)
	}
	if r, ok := s.rooms[name]; ok {
		return r, false
	}
	r := newRoom()
	s.rooms[name] = r
	s.metrics.RoomsChanged(len(s.rooms))
	s.log.Info("Room created", "room", name, "total", len(s.rooms))
	return r, true
}

// EnsureRoom creates the room if it does not exist and cancels a pending
// deletion for it. It reports whether a room was created.
func (s *Rooms) EnsureRoom(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, created := s.ensureLocked(name)
	return created
}

// Exists reports whether a room called name is live.
func (s *Rooms) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[name]
	return ok
}

// Join puts id into name, creating the room if needed, and replays the room
// history to id in order. Joining the lobby also sends the current countdown.
// The replay happens under the room lock, so any message appended after the
// join reaches id only after the whole history. It reports whether the room
// was created by this call.
func (s *Rooms) Join(id ConnID, name string) bool {
	s.mu.Lock()
	r, created := s.ensureLocked(name)
	r.mu.Lock()
	s.mu.Unlock()

	s.userMu.Lock()
	s.userRoom[id] = name
	s.userMu.Unlock()

	r.members[id] = struct{}{}
	for _, line := range r.history {
		s.bc.Unicast(id, line)
	}
	r.mu.Unlock()

	if name == LobbyRoom {
		s.bc.Unicast(id, LobbyTickFrame(s.countdown.Remaining()))
	}
	s.log.Debug("Connection joined room", "conn", id, "room", name)
	return created
}

// Leave removes id from its current room and returns that room's name. A
// non-lobby room left empty starts its grace window. The boolean is false
// when id was not in a room.
func (s *Rooms) Leave(id ConnID) (string, bool) {
	s.userMu.Lock()
	name, ok := s.userRoom[id]
	delete(s.userRoom, id)
	s.userMu.Unlock()
	if !ok {
		return "", false
	}

	// s.mu is held until the deletion is armed so that a revival, which
	// needs s.mu for writing, always finds the task it has to cancel.
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.rooms[name]
	if r == nil {
		return name, true
	}

	r.mu.Lock()
	delete(r.members, id)
	empty := len(r.members) == 0
	r.mu.Unlock()

	s.log.Debug("Connection left room", "conn", id, "room", name)
	if empty && name != LobbyRoom {
		s.scheduleDeletion(name)
	}
	return name, true
}

// Append adds text to the room's history and broadcasts it to the members.
// It returns false and drops the text when the room no longer exists.
func (s *Rooms) Append(name, text string) bool {
	s.mu.RLock()
	r := s.rooms[name]
	s.mu.RUnlock()
	if r == nil {
		s.log.Debug("Dropping message for missing room", "room", name)
		return false
	}

	r.mu.Lock()
	r.history = append(r.history, text)
	if limit := s.cfg.HistoryLimit; limit > 0 && len(r.history) > limit {
		r.history = slices.Delete(r.history, 0, len(r.history)-limit)
	}
	members := r.memberSnapshot()
	r.mu.Unlock()

	s.bc.Broadcast(members, text)
	return true
}

// ResetHistory empties the room's history in place.
func (s *Rooms) ResetHistory(name string) {
	s.mu.RLock()
	r := s.rooms[name]
	s.mu.RUnlock()
	if r == nil {
		return
	}
	r.mu.Lock()
	clear(r.history)
	r.history = r.history[:0]
	r.mu.Unlock()
}

// History returns a copy of the room's history.
func (s *Rooms) History(name string) []string {
	s.mu.RLock()
	r := s.rooms[name]
	s.mu.RUnlock()
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history)
}

// Members returns a snapshot of the room's members.
func (s *Rooms) Members(name string) []ConnID {
	s.mu.RLock()
	r := s.rooms[name]
	s.mu.RUnlock()
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.memberSnapshot()
}

// RoomOf returns the room id is currently in.
func (s *Rooms) RoomOf(id ConnID) (string, bool) {
	s.userMu.RLock()
	defer s.userMu.RUnlock()
	name, ok := s.userRoom[id]
	return name, ok
}

// Occupants returns every connection that is in some room.
func (s *Rooms) Occupants() []ConnID {
	s.userMu.RLock()
	defer s.userMu.RUnlock()
	return lo.Keys(s.userRoom)
}

// Names returns the sorted names of all live rooms, the lobby included.
func (s *Rooms) Names() []string {
	s.mu.RLock()
	names := lo.Keys(s.rooms)
	s.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Delete removes a non-lobby room if it has no members. It reports whether
// the room was removed.
func (s *Rooms) Delete(name string) bool {
	if name == LobbyRoom {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[name]
	if !ok {
		return false
	}
	r.mu.Lock()
	empty := len(r.members) == 0
	r.mu.Unlock()
	if !empty {
		return false
	}

	delete(s.rooms, name)
	s.metrics.RoomsChanged(len(s.rooms))
	return true
}

// scheduleDeletion arms the grace window for name. Callers hold s.mu.
func (s *Rooms) scheduleDeletion(name string) {
	if !s.sched.After(name, s.cfg.GraceWindow, func() { s.expire(name) }) {
		return
	}
	s.log.Debug("Room deletion scheduled", "room", name, "grace", s.cfg.GraceWindow)
}

// expire runs when a grace window ends. The room may have been revived in the
// meantime, so emptiness is checked again before deleting.
func (s *Rooms) expire(name string) {
	if !s.Delete(name) {
		s.log.Debug("Room deletion skipped", "room", name)
		return
	}
	s.metrics.RoomDeleted()
	s.log.Info("Room deleted after grace window", "room", name)
	s.bc.Broadcast(s.Occupants(), RoomsFrame(s.Names()))
}
