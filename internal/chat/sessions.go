package chat

import (
	"strings"
	"sync"
)

// Sessions maps connections to display names.
type Sessions struct {
	mu    sync.RWMutex
	names map[ConnID]string
}

// NewSessions returns an empty registry.
func NewSessions() *Sessions {
	return &Sessions{names: make(map[ConnID]string)}
}

// Login stores the trimmed name for id, replacing any earlier one. Names are
// not required to be unique and an empty name is accepted.
func (s *Sessions) Login(id ConnID, name string) string {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	s.names[id] = name
	s.mu.Unlock()
	return name
}

// NameOf returns the display name for id. The boolean is false when id never
// logged in.
func (s *Sessions) NameOf(id ConnID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.names[id]
	return name, ok
}

// Forget drops the session for id.
func (s *Sessions) Forget(id ConnID) {
	s.mu.Lock()
	delete(s.names, id)
	s.mu.Unlock()
}

// Len returns the number of logged-in connections.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}
