package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/workos/internal/emulator/http"
	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/internal/emulator/store/drivers/sqlite"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the emulator with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager

	// Services
	apiKeyService       *service.APIKeyService
	authorizeService    *service.AuthorizeService
	tokenService        *service.TokenService
	connectionService   *service.ConnectionService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "workos-emulator",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := slogx.WithContext(context.Background(), app.logger)

	if err := app.seed(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	keyManager, err := InitSigningKeys(ctx, app.cfg, app.db, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler, for tests that serve the emulator
// without a listener.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("emulator starting", "port", app.cfg.Port, "version", BuildVersion, "client_id", app.cfg.ClientID)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down emulator...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("emulator stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// seed fills an empty database with connections and the API key.
func (app *Application) seed(ctx context.Context) error {
	seeder := &service.SeedService{Store: app.db}

	data := service.DefaultSeedData()
	if app.cfg.SeedFile != "" {
		var err error
		if data, err = service.LoadSeedFile(app.cfg.SeedFile); err != nil {
			return err
		}
	}

	n, err := seeder.SeedConnections(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to seed connections: %w", err)
	}
	if n > 0 {
		app.logger.Info("seeded connections", "count", n, "seed_file", app.cfg.SeedFile)
	}

	generated, err := seeder.EnsureAPIKey(ctx, app.cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to set up api key: %w", err)
	}
	if generated != "" {
		// Shown once; only the hash is stored.
		app.logger.Warn("generated api key, set EMULATOR_API_KEY to keep it stable", "api_key", generated)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.apiKeyService = &service.APIKeyService{Store: app.db}

	app.authorizeService = &service.AuthorizeService{
		Store:    app.db,
		ClientID: app.cfg.ClientID,
		CodeTTL:  app.cfg.CodeTTL,
	}

	app.tokenService = &service.TokenService{
		KeyManager: app.keyManager,
		Store:      app.db,
		APIKeys:    app.apiKeyService,
		ClientID:   app.cfg.ClientID,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
	}

	app.connectionService = &service.ConnectionService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthorizeService = app.authorizeService
	router.TokenService = app.tokenService
	router.ConnectionService = app.connectionService
	router.APIKeyService = app.apiKeyService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
