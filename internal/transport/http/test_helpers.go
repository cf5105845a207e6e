package http

import (
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akulinin/duochat/internal/config"
	"github.com/akulinin/duochat/internal/core"
	"github.com/akulinin/duochat/internal/store"
	"github.com/akulinin/duochat/internal/store/sqlite"
)

// createTestLog creates an in-memory SQLite message log.
func createTestLog(t *testing.T) store.MessageLog {
	t.Helper()

	s, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestServer builds the real HTTP server over the given message log.
func createTestServer(t *testing.T, messageLog store.MessageLog) *stdhttp.Server {
	t.Helper()

	disabledLogger := zerolog.New(nil)

	cfg := config.Config{
		Addr:              ":0",
		SpeakerCount:      2,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}

	exchange := core.NewExchange(messageLog, core.NewRoster(cfg.SpeakerCount), &disabledLogger)
	return NewServer(exchange, &cfg, &disabledLogger)
}
