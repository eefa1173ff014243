// Package server wires configuration, storage, services and the HTTP API
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/dmitrijs2005/vibetracker/internal/server/config"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vibetracker/internal/server/rest"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	vibeService   *services.VibeService
	goalService   *services.GoalService
	exportService *services.ExportService
}

// openDB is a seam for tests.
var openDB = repomanager.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		vibeService:   services.NewVibeService(db, rm),
		goalService:   services.NewGoalService(db, rm),
		exportService: services.NewExportService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the API until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...", "export_enabled", app.config.ExportEnabled())

	app.initSignalHandler(cancelFunc)

	s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.vibeService, app.goalService, app.exportService, app.db,
		rest.WithLogLevel(app.config.LogLevel),
		rest.WithShutdownTimeout(app.config.ShutdownTimeout),
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
