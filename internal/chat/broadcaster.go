package chat

import "log/slog"

// Broadcaster fans text out to connections. Delivery is best effort: a failed
// send is logged and counted, and the remaining recipients are still tried.
type Broadcaster struct {
	transport Transport
	log       *slog.Logger
	metrics   Metrics
}

// NewBroadcaster wraps transport. A nil metrics discards counters.
func NewBroadcaster(transport Transport, logger *slog.Logger, metrics Metrics) *Broadcaster {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Broadcaster{transport: transport, log: logger, metrics: metrics}
}

// Unicast sends text to one connection and reports whether it was queued.
func (b *Broadcaster) Unicast(id ConnID, text string) (delivered bool) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Recovered from panic while sending", "conn", id, "panic", r)
			b.metrics.SendFailed()
			delivered = false
		}
	}()

	if !b.transport.IsOpen(id) {
		b.log.Debug("Skipping send to closed connection", "conn", id)
		return false
	}
	if err := b.transport.Send(id, text); err != nil {
		b.log.Debug("Send failed", "conn", id, "err", err)
		b.metrics.SendFailed()
		return false
	}
	return true
}

// Broadcast sends text to every id and returns how many sends succeeded.
// Callers pass a snapshot; membership changes during the loop are not seen.
func (b *Broadcaster) Broadcast(ids []ConnID, text string) int {
	delivered := 0
	for _, id := range ids {
		if b.Unicast(id, text) {
			delivered++
		}
	}
	return delivered
}
