package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/plexmcp/internal/mock"
	"github.com/vmunix/plexmcp/internal/tools"
	"github.com/vmunix/plexmcp/internal/transport"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServer(t *testing.T) *mcp.Server {
	t.Helper()
	client, err := mock.New(testLogger())
	require.NoError(t, err)
	return tools.New(client, tools.Options{Logger: testLogger()}).Server()
}

func TestHealthz(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{Logger: testLogger()})
	ts := httptest.NewServer(bridge.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandler_UnknownRoute(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{Logger: testLogger()})
	ts := httptest.NewServer(bridge.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/healthz", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSSE_ConcurrentSessions(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{Logger: testLogger()})
	ts := httptest.NewServer(bridge.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const clients = 3
	var wg sync.WaitGroup
	errs := make([]error, clients)
	texts := make([]string, clients)
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
			session, err := client.Connect(ctx, &mcp.SSEClientTransport{Endpoint: ts.URL + "/sse"}, nil)
			if err != nil {
				errs[i] = err
				return
			}
			defer func() { _ = session.Close() }()

			res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "list-libraries", Arguments: map[string]any{}})
			if err != nil {
				errs[i] = err
				return
			}
			texts[i] = res.Content[0].(*mcp.TextContent).Text
		}()
	}
	wg.Wait()

	for i := range clients {
		require.NoError(t, errs[i], "client %d", i)
		assert.Contains(t, texts[i], `"libraries"`)
	}
}

func TestRun_NoTransport(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{})
	assert.ErrorIs(t, bridge.Run(context.Background()), transport.ErrNoTransport)
}

func TestRun_StdioStopsOnCancel(t *testing.T) {
	serverSide, clientSide := mcp.NewInMemoryTransports()
	bridge := transport.New(newServer(t), transport.Options{Stdio: serverSide, Logger: testLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bridge.Run(ctx) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	session, err := client.Connect(context.Background(), clientSide, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "list-devices", Arguments: map[string]any{}})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_HTTPShutdown(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{
		Addr:            "127.0.0.1:0",
		Logger:          testLogger(),
		ShutdownTimeout: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bridge.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	bridge := transport.New(newServer(t), transport.Options{Addr: "256.0.0.1:bad", Logger: testLogger()})
	err := bridge.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
