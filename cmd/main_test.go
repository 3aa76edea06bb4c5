package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/ingestion"
	"github.com/guttosm/fxpulse/internal/logger"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil || srv.Addr != ":0" {
		t.Fatalf("unexpected server: %+v", srv)
	}

	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go gracefulShutdown(context.Background(), srv, func() { close(cleaned) })

	// let gracefulShutdown register for signals
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestLogSummary(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	d := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	res := &ingestion.Result{
		Dataset: models.Dataset{
			{Date: d, Occurrence: 1, USD: decimal.NewNullDecimal(decimal.RequireFromString("1000")),
				CAD: decimal.RequireFromString("1400"), Amount: decimal.RequireFromString("1400"),
				Rate: decimal.NewNullDecimal(decimal.RequireFromString("1.4"))},
			{Date: d, Occurrence: 2, CAD: decimal.RequireFromString("50"), Amount: decimal.RequireFromString("50")},
		},
		Skipped: []models.SkippedFile{{Filename: "notes.pdf", Kind: models.KindInvalidFilename}},
	}

	logSummary(res)

	out := buf.String()
	for _, want := range []string{`"message":"summary"`, `"records":2`, `"skipped":1`, `"total_cad":"$1,450.00"`, `"original_USD":"$1,000.00"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output: %s", want, out)
		}
	}
}
