package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/scentworks/parfum/internal/catalog/http"
	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/internal/catalog/store/drivers/jsonfile"
	"github.com/scentworks/parfum/internal/catalog/store/drivers/sqlite"
	"github.com/scentworks/parfum/pkg/cryptox"
	"github.com/scentworks/parfum/pkg/jwtx"
	"github.com/scentworks/parfum/pkg/notesdk"
	"github.com/scentworks/parfum/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the catalog service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	notes *notesdk.Client

	userService    *service.UserService
	tokenService   *service.TokenService
	perfumeService *service.PerfumeService
	notesService   *service.NotesService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "catalog-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.TokenSecret == "" {
		return nil, errors.New("CATALOG_TOKEN_SECRET must be set")
	}
	if cfg.NotesURL == "" {
		return nil, errors.New("CATALOG_NOTES_URL must be set")
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.notes = notesdk.NewClient(cfg.NotesURL)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("catalog service starting",
		"port", app.cfg.Port,
		"driver", app.cfg.StoreDriver,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	app.logger.Info("shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("catalog service stopped")
	return nil
}

// initStore opens the configured store driver.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "jsonfile":
		db, err := jsonfile.Open(app.cfg.UserFile, app.cfg.PerfumeFile)
		if err != nil {
			return fmt.Errorf("failed to open jsonfile store: %w", err)
		}
		app.db = db

	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.db = db
		app.logger.Info("database migrations applied successfully")

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	signer := jwtx.NewSigner([]byte(app.cfg.TokenSecret), app.cfg.Issuer)

	app.userService = service.NewUserService(app.db, app.notes)
	app.tokenService = service.NewTokenService(
		app.userService,
		app.db,
		app.notes,
		signer,
		app.cfg.TokenTTL,
	)
	app.perfumeService = service.NewPerfumeService(app.db)
	app.notesService = service.NewNotesService(app.notes)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifier([]byte(app.cfg.TokenSecret), app.cfg.Issuer)

	router := httpapi.NewRouter(verifier, BuildVersion, app.db, app.logger)
	router.UserService = app.userService
	router.TokenService = app.tokenService
	router.PerfumeService = app.perfumeService
	router.NotesService = app.notesService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
