package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/vibetracker/internal/client/client"
	"github.com/dmitrijs2005/vibetracker/internal/client/config"
	"github.com/dmitrijs2005/vibetracker/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	api    client.Client
	board  *services.Board
	reader *bufio.Reader
	out    io.Writer

	mu   sync.RWMutex
	Mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.NewRESTClient(c.ServerURL, c.RequestTimeout)

	return &App{
		config: c,
		api:    apiClient,
		board:  services.NewBoard(apiClient),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (app *App) setMode(mode Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.Mode != mode {
		app.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (app *App) getStatus() string {
	app.mu.RLock()
	defer app.mu.RUnlock()
	if app.Mode == "" {
		return ""
	}
	return "(" + string(app.Mode) + ") "
}

// Run loads the board, starts the connectivity watcher and blocks in the
// REPL until the user exits or stdin closes.
func (app *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Println("Welcome to Vibe Tracker (type 'help' for commands)")

	if err := app.Reload(ctx); err != nil {
		printlnFn("Error:", err.Error())
	}

	go app.StartOnlineStatusWatcher(ctx, app.config.OnlineCheckInterval)

	var statusFn func() string
	if interactive() {
		statusFn = app.getStatus
	}
	runREPL(ctx, app, statusFn, app.reader, app.out)
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// when reachability changes. It returns when ctx is done. A non-positive
// interval falls back to config.DefaultOnlineCheckInterval.
func (app *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Printf("Invalid online check interval %v, using %v\n", interval, config.DefaultOnlineCheckInterval)
		interval = config.DefaultOnlineCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, app.config.RequestTimeout)
			err := app.api.Ping(pctx)
			cancel()

			if err != nil {
				app.setMode(ModeOffline)
			} else {
				app.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
