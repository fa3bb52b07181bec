package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/dingus-admin/internal/config"
	"github.com/MKhiriev/dingus-admin/internal/handler"
	"github.com/MKhiriev/dingus-admin/internal/logger"
	"github.com/MKhiriev/dingus-admin/internal/service"
	"github.com/MKhiriev/dingus-admin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// signal.NotifyContext starts a process-wide watcher that never exits.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreAnyFunction("os/signal.loop"),
	)
}

func newTestConfig(addr string) *config.ServerConfig {
	return &config.ServerConfig{
		HTTPAddress:     addr,
		RequestTimeout:  time.Second,
		AssignmentsPath: config.DefaultAssignmentsPath,
		ConfigPath:      config.DefaultConfigPath,
	}
}

func newTestServer(t *testing.T, cfg *config.ServerConfig) Server {
	t.Helper()

	services := service.NewServices(store.NewMemoryStorages(), logger.Nop())
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, newTestConfig(":0"), logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestRunServer_ShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, newTestConfig("127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := newTestServer(t, newTestConfig(busy.Addr().String()))

	err = srv.RunServer(context.Background())

	require.ErrorIs(t, err, ErrListen)
}
