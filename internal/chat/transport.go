//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks

package chat

// ConnID identifies one open connection for as long as it stays open.
type ConnID string

// Transport is the outbound half of the connection layer.
type Transport interface {
	// Send queues text for a single connection. A non-nil error means this
	// recipient missed this message and nothing more.
	Send(id ConnID, text string) error
	// IsOpen reports whether the connection can still receive frames.
	IsOpen(id ConnID) bool
}

// EventHandler receives connection lifecycle events from the transport.
// Calls for different connections may arrive concurrently.
type EventHandler interface {
	OnConnect(id ConnID)
	OnText(id ConnID, payload string)
	OnDisconnect(id ConnID)
}

// Metrics receives counters from the core. A nil Metrics is replaced with a
// no-op implementation.
type Metrics interface {
	SendFailed()
	MessageRelayed()
	RoomsChanged(total int)
	SessionsChanged(total int)
	RoomDeleted()
	LobbyReset()
}

type nopMetrics struct{}

func (nopMetrics) SendFailed()         {}
func (nopMetrics) MessageRelayed()     {}
func (nopMetrics) RoomsChanged(int)    {}
func (nopMetrics) SessionsChanged(int) {}
func (nopMetrics) RoomDeleted()        {}
func (nopMetrics) LobbyReset()         {}
