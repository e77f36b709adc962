// Package server initializes and runs the main application server: it opens
// the database, applies migrations, wires the services and serves the HTTP
// API until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cookenu/internal/logging"
	"cookenu/internal/server/config"
	"cookenu/internal/server/httpapi"
	"cookenu/internal/server/repositories/repomanager"
	"cookenu/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	rs := services.NewRecipeService(db, rm)

	api := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, us, rs, us.TokenCodec())

	return &App{config: cfg, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
