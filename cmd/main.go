package main

//
//  @title           fxpulse API
//  @version         1.0
//  @description     Query amounts extracted from PDF documents and normalized to CAD.
//  @termsOfService  https://github.com/guttosm/fxpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/fxpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        records
//  @tag.description Extracted records and their totals
//
//  @tag.name        runs
//  @tag.description Stored extraction runs
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/fxpulse/config"
	"github.com/guttosm/fxpulse/internal/app"
	"github.com/guttosm/fxpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the fxpulse application.
//
// Modes (selected via --mode flag):
//   - extract: Reads every PDF in --dir, writes the CAD-normalized table and the skip report.
//   - api:     Starts the REST API over records stored with --persist.
//
// Flags:
//   - --mode:    Execution mode ("extract" or "api"). Default: "extract".
//   - --dir:     Directory containing the PDF documents. Default: ".".
//   - --out:     Output table path, "-" for stdout. Default: OUTPUT_FILENAME inside --dir.
//   - --persist: Also store the run in PostgreSQL. Defaults to PERSIST_RECORDS.
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "extract", "Mode: extract or api")
	dir := flag.String("dir", ".", "Directory with .pdf files")
	out := flag.String("out", "", "Output table path (\"-\" for stdout)")
	persist := flag.Bool("persist", config.AppConfig.Output.Persist, "Store the run in PostgreSQL")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "extract":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		logger.L().Info().Str("dir", *dir).Msg("running extraction")
		code := runExtract(ctx, config.AppConfig, extractOptions{Dir: *dir, Out: *out, Persist: *persist})
		stop()
		os.Exit(code)

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(context.Background(), server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
