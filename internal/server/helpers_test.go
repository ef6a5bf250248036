package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService starts a Service behind an httptest server. overrides are
// applied on top of the defaults; the test server's own URL is always an
// allowed origin.
func newTestService(t *testing.T, overrides env.EnvSet) (*Service, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	testServer := httptest.NewServer(mux)
	t.Cleanup(testServer.Close)

	es := env.EnvSet{"ALLOWED_ORIGINS": testServer.URL}
	for k, v := range overrides {
		es[k] = v
	}
	cfg, err := ConfigFromEnvSet(es)
	require.NoError(t, err)

	svc := NewService(context.Background(), cfg, discardLogger())
	svc.Start()
	t.Cleanup(func() { _ = svc.Shutdown(2 * time.Second) })

	mux.Handle("/", svc.Routes())
	return svc, testServer
}

func wsURL(serverURL string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
}

func originHeader(origin string) http.Header {
	h := http.Header{}
	h.Set("Origin", origin)
	return h
}

func dial(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, resp, err := dialer.Dial(wsURL(serverURL), originHeader(serverURL))
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, text string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(text)))
}

// readUntil reads frames until one equals want, returning every frame seen.
func readUntil(t *testing.T, conn *websocket.Conn, want string) []string {
	t.Helper()
	var seen []string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %q, saw %q", want, seen)
		seen = append(seen, string(payload))
		if string(payload) == want {
			return seen
		}
	}
}

// expectSilence fails if a non-tick frame arrives within d.
func expectSilence(t *testing.T, conn *websocket.Conn, d time.Duration) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(d)))
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if strings.HasPrefix(string(payload), "__lobby_tick__") {
			continue
		}
		t.Fatalf("expected no frame, got %q", payload)
	}
}
