package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionsLoginKeepsLastTrimmedName(t *testing.T) {
	s := NewSessions()

	_, ok := s.NameOf("c1")
	require.False(t, ok)

	require.Equal(t, "alice", s.Login("c1", "  alice "))
	s.Login("c1", "bob\n")

	name, ok := s.NameOf("c1")
	require.True(t, ok)
	require.Equal(t, "bob", name)
}

func TestSessionsAcceptEmptyAndDuplicateNames(t *testing.T) {
	s := NewSessions()
	s.Login("c1", "   ")
	s.Login("c2", "alice")
	s.Login("c3", "alice")

	name, ok := s.NameOf("c1")
	require.True(t, ok)
	require.Empty(t, name)
	require.Equal(t, 3, s.Len())
}

func TestSessionsForget(t *testing.T) {
	s := NewSessions()
	s.Login("c1", "alice")
	s.Forget("c1")
	s.Forget("never-logged-in")

	_, ok := s.NameOf("c1")
	require.False(t, ok)
	require.Zero(t, s.Len())
}

func TestSessionsConcurrentAccess(t *testing.T) {
	s := NewSessions()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := ConnID(fmt.Sprintf("c%d", i))
			s.Login(id, fmt.Sprintf("user-%d", i))
			s.NameOf(id)
			if i%2 == 0 {
				s.Forget(id)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 25, s.Len())
}
