package chat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())
	defer s.Stop()

	var fired atomic.Int32
	require.True(t, s.After("general", 10*time.Millisecond, func() { fired.Add(1) }))
	require.True(t, s.Pending("general"))

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.False(t, s.Pending("general"))

	time.Sleep(30 * time.Millisecond)
	require.EqualValues(t, 1, fired.Load())
}

func TestSchedulerAfterIgnoresDuplicateKey(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())
	defer s.Stop()

	var first, second atomic.Int32
	require.True(t, s.After("general", 20*time.Millisecond, func() { first.Add(1) }))
	require.False(t, s.After("general", time.Millisecond, func() { second.Add(1) }))

	require.Eventually(t, func() bool { return first.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Zero(t, second.Load())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())
	defer s.Stop()

	var fired atomic.Int32
	s.After("general", 20*time.Millisecond, func() { fired.Add(1) })

	require.True(t, s.Cancel("general"))
	require.False(t, s.Cancel("general"))
	require.False(t, s.Pending("general"))

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, fired.Load())

	require.True(t, s.After("general", time.Millisecond, func() { fired.Add(1) }))
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestSchedulerEveryRepeatsUntilStop(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())

	var ticks atomic.Int32
	s.Every(5*time.Millisecond, func() { ticks.Add(1) })

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, ticks.Load())
}

func TestSchedulerRecoversFromPanickingTask(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())
	defer s.Stop()

	var ticks atomic.Int32
	s.Every(5*time.Millisecond, func() {
		if ticks.Add(1) == 1 {
			panic("boom")
		}
	})

	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestSchedulerStopDropsPending(t *testing.T) {
	s := NewScheduler(context.Background(), discardLogger())

	var fired atomic.Int32
	s.After("general", 20*time.Millisecond, func() { fired.Add(1) })
	s.Stop()

	require.False(t, s.Pending("general"))
	require.False(t, s.After("other", time.Millisecond, func() { fired.Add(1) }))

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, fired.Load())
}

func TestSchedulerStopsWithParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(ctx, discardLogger())
	defer s.Stop()

	cancel()
	require.False(t, s.After("general", time.Millisecond, func() {}))
}
