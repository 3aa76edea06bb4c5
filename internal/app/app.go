package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/config"
	"github.com/guttosm/fxpulse/internal/api"
	"github.com/guttosm/fxpulse/internal/service"
	"github.com/guttosm/fxpulse/internal/storage"
)

// migrator applies the schema before the API starts serving; overridden in tests.
var migrator = storage.Migrate

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres() and applies migrations.
//   - Initializes the repository layer (RecordsRepository).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if err := migrator(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
	}

	repo := storage.NewRecordsRepository(db)
	svc := service.NewRecordsService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
