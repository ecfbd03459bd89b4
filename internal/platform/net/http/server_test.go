package http

import (
	"context"
	"io"
	stdhttp "net/http"
	"testing"
	"time"

	"creditclear/internal/platform/config"
	"creditclear/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Config(t *testing.T) {
	assert.Equal(t, ":4000", NewServer(config.New().Prefix("NOPE_")).Addr())

	t.Setenv("T_ADDR", ":12345")
	t.Setenv("T_READ_HEADER_TIMEOUT", "3s")
	s := NewServer(config.New().Prefix("T_"))
	assert.Equal(t, ":12345", s.Addr())
	assert.Equal(t, 3*time.Second, s.srv.ReadHeaderTimeout)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	testkit.NoLeaks(t)
	t.Setenv("T_ADDR", "127.0.0.1:0")
	s := NewServer(config.New().Prefix("T_"))
	s.Router().Get("/ping", write("pong"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var addr string
	select {
	case a := <-s.Ready():
		addr = a.String()
	case err := <-done:
		t.Fatalf("run: %v", err)
	}

	client := &stdhttp.Client{Transport: &stdhttp.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + addr + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenError(t *testing.T) {
	t.Setenv("T_ADDR", "127.0.0.1:abc")
	assert.Error(t, NewServer(config.New().Prefix("T_")).Run(context.Background()))
}
