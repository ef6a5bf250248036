package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"
)

var errSendRefused = errors.New("send refused")

// recordingTransport keeps every frame per connection.
type recordingTransport struct {
	mu      sync.Mutex
	frames  map[ConnID][]string
	closed  map[ConnID]bool
	failing map[ConnID]bool
}

func newRecordingTransport() *recordingTransport {
	return &recordingTransport{
		frames:  make(map[ConnID][]string),
		closed:  make(map[ConnID]bool),
		failing: make(map[ConnID]bool),
	}
}

func (f *recordingTransport) Send(id ConnID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[id] {
		return errSendRefused
	}
	f.frames[id] = append(f.frames[id], text)
	return nil
}

func (f *recordingTransport) IsOpen(id ConnID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.closed[id]
}

func (f *recordingTransport) Frames(id ConnID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.frames[id])
}

func (f *recordingTransport) Last(id ConnID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	frames := f.frames[id]
	if len(frames) == 0 {
		return ""
	}
	return frames[len(frames)-1]
}

func (f *recordingTransport) Reset(id ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.frames, id)
}

func (f *recordingTransport) Fail(id ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[id] = true
}

func (f *recordingTransport) Close(id ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed[id] = true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{
		LobbyDuration: 300,
		TickInterval:  time.Hour,
		GraceWindow:   50 * time.Millisecond,
	}
}

func newTestRelay(t *testing.T, cfg Config) (*Relay, *recordingTransport) {
	t.Helper()
	transport := newRecordingTransport()
	relay := NewRelay(context.Background(), transport, cfg, discardLogger(), nil)
	t.Cleanup(relay.Stop)
	return relay, transport
}
