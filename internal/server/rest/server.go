// Package rest exposes the vibe and goal services over HTTP using echo.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// VibeService is the part of services.VibeService used by the handlers.
type VibeService interface {
	List(ctx context.Context) ([]*models.Vibe, error)
	Create(ctx context.Context, in services.CreateVibeInput) (*models.Vibe, error)
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	List(ctx context.Context) ([]*models.Goal, error)
	Create(ctx context.Context, in services.CreateGoalInput) (*models.Goal, error)
	SetCompleted(ctx context.Context, id string, in services.UpdateGoalInput) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
}

type Exporter interface {
	Export(ctx context.Context) (*services.ExportResult, error)
}

// Pinger reports store reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	echo            *echo.Echo
	shutdownTimeout time.Duration
}

type Option func(*HTTPServer)

// WithLogLevel sets the level of echo's own logger.
func WithLogLevel(level string) Option {
	return func(s *HTTPServer) {
		SetLevel(s.echo, level)
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *HTTPServer) {
		s.shutdownTimeout = d
	}
}

func NewHTTPServer(a string, l logging.Logger, vs VibeService, gs GoalService, ex Exporter, db Pinger, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		echo:            echo.New(),
		shutdownTimeout: 10 * time.Second,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	for _, opt := range opts {
		opt(s)
	}

	s.echo.HTTPErrorHandler = ErrorHandler(s.logger)
	s.echo.Use(middleware.Recover())
	s.echo.Use(LogHandlerFunc(s.logger))

	register(s.echo, vs, gs, ex, db)
	return s
}

// Handler returns the configured router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

func register(e *echo.Echo, vs VibeService, gs GoalService, ex Exporter, db Pinger) {
	e.GET("/", IndexHandler())

	api := e.Group("/api")

	api.GET("/vibes", ListVibesHandler(vs))
	api.POST("/vibes", CreateVibeHandler(vs))
	api.DELETE("/vibes", DeleteVibeHandler(vs))

	api.GET("/goals", ListGoalsHandler(gs))
	api.POST("/goals", CreateGoalHandler(gs))
	api.PATCH("/goals", UpdateGoalHandler(gs))
	api.DELETE("/goals", DeleteGoalHandler(gs))

	api.GET("/health", HealthHandler(db))
	api.POST("/export", ExportHandler(ex))
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
