// Package server defines transport errors and helpers shared by the hub and
// client pumps.
package server

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownClient is returned when sending to an ID the hub does not hold.
	ErrUnknownClient = errors.New("unknown client")
	// ErrClientClosed is returned when the client is being torn down.
	ErrClientClosed = errors.New("client closed")
	// ErrSendBufferFull is returned when the client's outbound queue is full.
	ErrSendBufferFull = errors.New("send buffer full")
)

// isExpectedCloseError checks if an error is expected during connection closure.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "websocket: close sent") ||
		strings.Contains(errStr, "broken pipe")
}
