package server

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tyrowin/lobbychat/internal/chat"
	"github.com/Tyrowin/lobbychat/internal/chat/mocks"
)

type countingObserver struct {
	opened, closed chan struct{}
}

func newCountingObserver() *countingObserver {
	return &countingObserver{opened: make(chan struct{}, 8), closed: make(chan struct{}, 8)}
}

func (o *countingObserver) ConnectionOpened() { o.opened <- struct{}{} }
func (o *countingObserver) ConnectionClosed() { o.closed <- struct{}{} }

func startHub(t *testing.T, handler *mocks.MockEventHandler, observer ConnectionObserver) *Hub {
	t.Helper()
	hub := NewHub(discardLogger(), observer)
	if handler != nil {
		hub.SetHandler(handler)
	}
	go hub.Run()
	t.Cleanup(func() { _ = hub.Shutdown(time.Second) })
	return hub
}

func testClientConfig() *Config {
	cfg := NewConfig()
	cfg.SendBufferSize = 2
	return cfg
}

// TestHubIgnoresNilRegistration verifies that a nil client does not stop the loop.
func TestHubIgnoresNilRegistration(t *testing.T) {
	hub := startHub(t, nil, nil)

	select {
	case hub.register <- nil:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("hub did not accept nil registration")
	}
	require.Zero(t, hub.ClientCount())
}

// TestHubRegistrationLifecycle verifies that registering and unregistering a
// client is reported to the handler and the observer.
func TestHubRegistrationLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockEventHandler(ctrl)
	observer := newCountingObserver()
	hub := startHub(t, handler, observer)

	client := NewClient(nil, hub, "127.0.0.1:12345", testClientConfig())
	require.NotEmpty(t, client.ID())

	connected := make(chan struct{})
	disconnected := make(chan struct{})
	handler.EXPECT().OnConnect(client.ID()).Do(func(chat.ConnID) { close(connected) })
	handler.EXPECT().OnDisconnect(client.ID()).Do(func(chat.ConnID) { close(disconnected) })

	hub.register <- client
	waitFor(t, connected)
	waitFor(t, observer.opened)
	require.True(t, hub.IsOpen(client.ID()))
	require.Equal(t, 1, hub.ClientCount())

	hub.unregister <- client
	waitFor(t, disconnected)
	waitFor(t, observer.closed)
	require.False(t, hub.IsOpen(client.ID()))

	_, ok := <-client.send
	require.False(t, ok, "send channel is closed after unregister")
}

// TestHubSend verifies delivery and the error cases of Hub.Send.
func TestHubSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockEventHandler(ctrl)
	handler.EXPECT().OnConnect(gomock.Any()).AnyTimes()
	handler.EXPECT().OnDisconnect(gomock.Any()).AnyTimes()
	hub := startHub(t, handler, nil)

	err := hub.Send("missing", "hi")
	require.True(t, errors.Is(err, ErrUnknownClient))

	client := NewClient(nil, hub, "127.0.0.1:12345", testClientConfig())
	hub.register <- client
	require.Eventually(t, func() bool { return hub.IsOpen(client.ID()) }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Send(client.ID(), "one"))
	require.NoError(t, hub.Send(client.ID(), "two"))
	require.ErrorIs(t, hub.Send(client.ID(), "three"), ErrSendBufferFull)

	require.Equal(t, []byte("one"), <-client.send)
	require.Equal(t, []byte("two"), <-client.send)
}

// TestHubUnregisterUnknownClient verifies that stale unregistrations are ignored.
func TestHubUnregisterUnknownClient(t *testing.T) {
	hub := startHub(t, nil, nil)
	client := NewClient(nil, hub, "127.0.0.1:1", testClientConfig())

	select {
	case hub.unregister <- client:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("hub did not accept unregistration")
	}
	require.Zero(t, hub.ClientCount())
}

// TestHubShutdownStopsRun verifies that Shutdown returns once the loop exits.
func TestHubShutdownStopsRun(t *testing.T) {
	hub := NewHub(discardLogger(), nil)
	go hub.Run()

	require.NoError(t, hub.Shutdown(time.Second))

	select {
	case <-hub.done:
	default:
		t.Fatal("run loop still active after shutdown")
	}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}
