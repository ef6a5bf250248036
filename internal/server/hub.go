// Package server coordinates client registration, outbound delivery and
// connection cleanup for the relay via the Hub type.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Tyrowin/lobbychat/internal/chat"
)

// ConnectionObserver is told about connections opening and closing.
type ConnectionObserver interface {
	ConnectionOpened()
	ConnectionClosed()
}

// Hub owns every open client, keyed by connection ID. It implements
// chat.Transport and forwards connection events to a chat.EventHandler.
// Registration and unregistration are serialized through the run loop; text
// frames are dispatched straight from each client's read pump, so different
// connections are handled concurrently.
type Hub struct {
	clients    map[chat.ConnID]*Client
	register   chan *Client
	unregister chan *Client
	handler    chat.EventHandler
	observer   ConnectionObserver
	mutex      sync.RWMutex
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
	log        *slog.Logger
}

// NewHub creates a hub. observer may be nil.
func NewHub(logger *slog.Logger, observer ConnectionObserver) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[chat.ConnID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		observer:   observer,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		log:        logger,
	}
}

// SetHandler installs the receiver of connection events. It must be called
// before Run.
func (h *Hub) SetHandler(handler chat.EventHandler) {
	h.handler = handler
}

// Send queues text for the client with the given ID without blocking.
func (h *Hub) Send(id chat.ConnID, text string) error {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	client, ok := h.clients[id]
	if !ok {
		return fmt.Errorf("send to %s: %w", id, ErrUnknownClient)
	}
	if client.closed {
		return fmt.Errorf("send to %s: %w", id, ErrClientClosed)
	}

	select {
	case client.send <- []byte(text):
		return nil
	default:
		return fmt.Errorf("send to %s: %w", id, ErrSendBufferFull)
	}
}

// IsOpen reports whether the client with the given ID is registered and not
// being torn down.
func (h *Hub) IsOpen(id chat.ConnID) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	client, ok := h.clients[id]
	return ok && !client.closed
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Run starts the hub's main event loop, handling client registration and
// unregistration. It runs until Shutdown is called.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.shutdownClients()
			return

		case client := <-h.register:
			if client == nil {
				h.log.Warn("Received nil client registration; skipping")
				continue
			}
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mutex.Lock()
	client.closed = false
	h.clients[client.id] = client
	clientCount := len(h.clients)
	h.mutex.Unlock()

	if h.observer != nil {
		h.observer.ConnectionOpened()
	}
	client.log.Info("Client registered", "total", clientCount)

	if h.handler != nil {
		h.handler.OnConnect(client.id)
	}

	if client.conn == nil {
		return
	}
	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		client.writePump()
	}()
	go func() {
		defer h.wg.Done()
		client.readPump()
	}()
}

func (h *Hub) removeClient(client *Client) {
	if client == nil {
		return
	}

	h.mutex.Lock()
	if existing, ok := h.clients[client.id]; !ok || existing != client {
		h.mutex.Unlock()
		return
	}
	delete(h.clients, client.id)
	client.closed = true
	clientCount := len(h.clients)
	h.mutex.Unlock()

	// Close the channel after releasing the lock
	close(client.send)

	if h.observer != nil {
		h.observer.ConnectionClosed()
	}
	client.log.Info("Client unregistered", "total", clientCount)

	if h.handler != nil {
		h.handler.OnDisconnect(client.id)
	}
}

// dispatch hands a text frame to the event handler.
func (h *Hub) dispatch(client *Client, payload string) {
	if h.handler == nil {
		return
	}
	h.handler.OnText(client.id, payload)
}

// leave asks the run loop to unregister client, giving up if the hub is
// shutting down.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// shutdownClients gracefully closes all active client connections
func (h *Hub) shutdownClients() {
	h.log.Info("Shutting down all client connections...")

	h.mutex.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		client.closed = true
		clients = append(clients, client)
	}
	h.mutex.Unlock()

	for _, client := range clients {
		if client.conn == nil {
			continue
		}
		if err := client.conn.Close(); err != nil && !isExpectedCloseError(err) {
			client.log.Warn("Error closing client connection", "err", err)
		}
	}

	h.log.Info("Closed client connections", "count", len(clients))
}

// Shutdown initiates graceful shutdown of the hub and waits for all goroutines to complete.
// It returns after all client connections are closed and goroutines have finished,
// or when the timeout is reached.
func (h *Hub) Shutdown(timeout time.Duration) error {
	h.log.Info("Initiating hub shutdown...")

	h.cancel()
	<-h.done

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.log.Info("Hub shutdown completed successfully")
		return nil
	case <-time.After(timeout):
		h.log.Warn("Hub shutdown timeout reached, some goroutines may still be running")
		return context.DeadlineExceeded
	}
}
