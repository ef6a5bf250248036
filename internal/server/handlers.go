// Package server exposes HTTP handlers, including WebSocket upgrades, health
// checks, the room list and the built-in test page.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// roomsResponse is the body of GET /rooms.
type roomsResponse struct {
	Rooms          []string `json:"rooms"`
	LobbyRemaining int      `json:"lobbyRemaining"`
	Connections    int      `json:"connections"`
}

// WebSocketHandler upgrades the request and hands the new client to the hub,
// which starts its pumps.
func (s *Service) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "addr", r.RemoteAddr, "err", err)
		return
	}

	client := NewClient(conn, s.hub, r.RemoteAddr, s.cfg)

	select {
	case s.hub.register <- client:
	case <-s.hub.ctx.Done():
		_ = conn.Close()
	}
}

// HealthHandler provides a simple health check endpoint that returns server status.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprintf(w, "lobbychat server is running!")
}

// RoomsHandler reports the live rooms and the lobby countdown as JSON.
func (s *Service) RoomsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	body := roomsResponse{
		Rooms:          s.relay.Rooms().Names(),
		LobbyRemaining: s.relay.Lobby().Remaining(),
		Connections:    s.hub.ClientCount(),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("Error writing rooms response", "err", err)
	}
}

// TestPageHandler serves a small HTML client that speaks the room protocol:
// login, pick or create a room, chat, and watch the lobby countdown.
func TestPageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = fmt.Fprint(w, testPage)
}

const testPage = `<!DOCTYPE html>
<html>
<head>
    <title>lobbychat</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        #messages {
            border: 1px solid #ccc;
            height: 300px;
            padding: 10px;
            overflow-y: scroll;
            margin: 10px 0;
            background-color: #f9f9f9;
        }
        input[type="text"] { width: 240px; padding: 5px; margin-right: 10px; }
        button { padding: 5px 15px; background-color: #007cba; color: white; border: none; cursor: pointer; }
        button:hover { background-color: #005a87; }
        .status { margin: 10px 0; padding: 5px; border-radius: 3px; }
        .connected { background-color: #d4edda; color: #155724; }
        .disconnected { background-color: #f8d7da; color: #721c24; }
    </style>
</head>
<body>
    <h1>lobbychat</h1>

    <div id="status" class="status disconnected">Disconnected</div>

    <div>
        <input type="text" id="nameInput" placeholder="Display name">
        <button onclick="login()">Login</button>
    </div>
    <div>
        <select id="rooms" onchange="switchRoom(this.value)"></select>
        <input type="text" id="roomInput" placeholder="New room">
        <button onclick="createRoom()">Create</button>
        <span id="timer"></span>
    </div>
    <div>
        <input type="text" id="messageInput" placeholder="Type a message...">
        <button onclick="sendMessage()">Send</button>
    </div>

    <div id="messages"></div>

    <script>
        const proto = location.protocol === 'https:' ? 'wss' : 'ws';
        const ws = new WebSocket(proto + '://' + location.host + '/ws');
        const messagesDiv = document.getElementById('messages');
        const statusDiv = document.getElementById('status');
        const roomsSelect = document.getElementById('rooms');
        const timerSpan = document.getElementById('timer');
        let current = 'lobby';

        function addMessage(text) {
            const el = document.createElement('div');
            el.textContent = text;
            messagesDiv.appendChild(el);
            messagesDiv.scrollTop = messagesDiv.scrollHeight;
        }

        function renderRooms(names) {
            roomsSelect.innerHTML = '';
            names.forEach(function(name) {
                const opt = document.createElement('option');
                opt.value = name;
                opt.textContent = name;
                opt.selected = name === current;
                roomsSelect.appendChild(opt);
            });
        }

        ws.onopen = function() {
            statusDiv.textContent = 'Connected';
            statusDiv.className = 'status connected';
        };
        ws.onclose = function() {
            statusDiv.textContent = 'Disconnected';
            statusDiv.className = 'status disconnected';
        };
        ws.onmessage = function(event) {
            const d = event.data;
            if (d === '__login_ok__') {
                ws.send('__join__lobby');
            } else if (d.startsWith('__rooms__')) {
                const raw = d.substring('__rooms__'.length);
                renderRooms(raw ? raw.split(',') : []);
            } else if (d.startsWith('__lobby_tick__')) {
                timerSpan.textContent = d.substring('__lobby_tick__'.length) + 's';
            } else if (d === '__lobby_reset__') {
                messagesDiv.innerHTML = '';
            } else {
                addMessage(d);
            }
        };

        function login() {
            const name = document.getElementById('nameInput').value.trim();
            if (name) ws.send('__login__' + name);
        }

        function switchRoom(name) {
            current = name;
            messagesDiv.innerHTML = '';
            timerSpan.textContent = '';
            ws.send('__switch__' + name);
        }

        function createRoom() {
            const input = document.getElementById('roomInput');
            const name = input.value.trim();
            if (!name || name.toLowerCase() === 'lobby') return;
            ws.send('__create__' + name);
            switchRoom(name);
            input.value = '';
        }

        function sendMessage() {
            const input = document.getElementById('messageInput');
            if (input.value.trim()) {
                ws.send(input.value);
                input.value = '';
            }
        }

        document.getElementById('messageInput').addEventListener('keypress', function(e) {
            if (e.key === 'Enter') sendMessage();
        });
    </script>
</body>
</html>`
