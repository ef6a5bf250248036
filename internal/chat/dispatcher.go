package chat

import "log/slog"

// Dispatcher turns transport events into registry and room operations.
type Dispatcher struct {
	cfg      Config
	sessions *Sessions
	rooms    *Rooms
	bc       *Broadcaster
	log      *slog.Logger
	metrics  Metrics
}

// NewDispatcher wires a dispatcher over the given registries.
func NewDispatcher(cfg Config, sessions *Sessions, rooms *Rooms, bc *Broadcaster, logger *slog.Logger, metrics Metrics) *Dispatcher {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Dispatcher{
		cfg:      cfg.withDefaults(),
		sessions: sessions,
		rooms:    rooms,
		bc:       bc,
		log:      logger,
		metrics:  metrics,
	}
}

// OnConnect is called once a connection is registered. Nothing is sent until
// the client logs in.
func (d *Dispatcher) OnConnect(id ConnID) {
	d.log.Debug("Connection opened", "conn", id)
}

// OnText handles one inbound text frame.
func (d *Dispatcher) OnText(id ConnID, payload string) {
	cmd := ParseCommand(payload)
	switch cmd.Kind {
	case CommandLogin:
		d.login(id, cmd.Arg)
	case CommandCreate:
		d.create(id, cmd.Arg)
	case CommandJoin, CommandSwitch:
		d.move(id, cmd.Arg)
	default:
		d.chat(id, cmd.Arg)
	}
}

// OnDisconnect releases everything held for id. It is safe for connections
// that never logged in or never joined a room.
func (d *Dispatcher) OnDisconnect(id ConnID) {
	if name, ok := d.rooms.Leave(id); ok {
		d.log.Debug("Connection closed while in room", "conn", id, "room", name)
	}
	d.sessions.Forget(id)
	d.metrics.SessionsChanged(d.sessions.Len())
}

func (d *Dispatcher) login(id ConnID, name string) {
	name = d.sessions.Login(id, name)
	d.metrics.SessionsChanged(d.sessions.Len())
	d.log.Info("Client logged in", "conn", id, "name", name)

	d.bc.Unicast(id, FrameLoginOK)
	d.bc.Unicast(id, RoomsFrame(d.rooms.Names()))
}

func (d *Dispatcher) create(id ConnID, name string) {
	if !d.cfg.Creatable(name) {
		d.log.Debug("Rejected room creation", "conn", id, "room", name)
		return
	}
	d.rooms.EnsureRoom(name)
	d.announceRooms()
}

func (d *Dispatcher) move(id ConnID, target string) {
	if target != LobbyRoom && !d.rooms.Exists(target) && !d.cfg.Creatable(target) {
		d.log.Debug("Rejected join to reserved room name", "conn", id, "room", target)
		return
	}

	d.rooms.Leave(id)
	if d.rooms.Join(id, target) {
		d.announceRooms()
	}
}

func (d *Dispatcher) chat(id ConnID, text string) {
	name, ok := d.sessions.NameOf(id)
	if !ok {
		d.log.Debug("Dropping message from connection without login", "conn", id)
		return
	}
	room, ok := d.rooms.RoomOf(id)
	if !ok {
		d.log.Debug("Dropping message from connection outside any room", "conn", id)
		return
	}
	if d.rooms.Append(room, ChatLine(name, text)) {
		d.metrics.MessageRelayed()
	}
}

// announceRooms sends the room list to every connection that is in a room.
func (d *Dispatcher) announceRooms() {
	d.bc.Broadcast(d.rooms.Occupants(), RoomsFrame(d.rooms.Names()))
}
