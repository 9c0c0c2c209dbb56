package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/dstebbins/microblog-api/internal/config"
	"github.com/dstebbins/microblog-api/internal/platform/logger"
	"github.com/dstebbins/microblog-api/internal/platform/postgres"
	"github.com/dstebbins/microblog-api/internal/service/auth"
	"github.com/dstebbins/microblog-api/internal/store"
)

// application holds the wired dependencies of the running server.
// Everything is constructed once at startup and injected into handlers;
// there are no ambient globals beyond the default logger.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	userStore    store.UserStore
	postStore    store.PostStore
	tokenService auth.TokenService
	hasher       *auth.BcryptHasher
}

// newApplication loads configuration, sets up logging, connects to the
// database, and wires the stores and services. Any failure here is fatal:
// the server never serves requests half-configured (in particular, never
// without a signing secret).
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	app := &application{
		config:       cfg,
		logger:       log,
		db:           db,
		userStore:    postgres.NewUserStore(db),
		postStore:    postgres.NewPostStore(db),
		tokenService: tokenService,
		hasher:       auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}

	log.Info("application initialized",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"db_max_open_conns", cfg.Database.MaxOpenConns)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
