// Package metrics exposes the relay's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors groups every metric the relay reports. It satisfies
// chat.Metrics.
type Collectors struct {
	registry *prometheus.Registry

	Connections     prometheus.Gauge
	Rooms           prometheus.Gauge
	Sessions        prometheus.Gauge
	MessagesRelayed prometheus.Counter
	SendFailures    prometheus.Counter
	RoomsDeleted    prometheus.Counter
	LobbyResets     prometheus.Counter
}

// New registers the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	c := &Collectors{
		registry: reg,
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lobbychat",
			Name:      "connections",
			Help:      "Open WebSocket connections.",
		}),
		Rooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lobbychat",
			Name:      "rooms",
			Help:      "Live rooms, lobby included.",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lobbychat",
			Name:      "sessions",
			Help:      "Connections that have logged in with a display name.",
		}),
		MessagesRelayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbychat",
			Name:      "messages_relayed_total",
			Help:      "Chat messages appended to a room.",
		}),
		SendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbychat",
			Name:      "send_failures_total",
			Help:      "Frames that could not be queued for a recipient.",
		}),
		RoomsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbychat",
			Name:      "rooms_deleted_total",
			Help:      "Rooms removed after their grace window.",
		}),
		LobbyResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lobbychat",
			Name:      "lobby_resets_total",
			Help:      "Completed lobby countdown cycles.",
		}),
	}
	reg.MustRegister(
		c.Connections, c.Rooms, c.Sessions, c.MessagesRelayed,
		c.SendFailures, c.RoomsDeleted, c.LobbyResets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collectors) SendFailed()               { c.SendFailures.Inc() }
func (c *Collectors) MessageRelayed()           { c.MessagesRelayed.Inc() }
func (c *Collectors) RoomsChanged(total int)    { c.Rooms.Set(float64(total)) }
func (c *Collectors) SessionsChanged(total int) { c.Sessions.Set(float64(total)) }
func (c *Collectors) RoomDeleted()              { c.RoomsDeleted.Inc() }
func (c *Collectors) LobbyReset()               { c.LobbyResets.Inc() }

// ConnectionOpened and ConnectionClosed track the connection gauge for the
// transport.
func (c *Collectors) ConnectionOpened() { c.Connections.Inc() }
func (c *Collectors) ConnectionClosed() { c.Connections.Dec() }
