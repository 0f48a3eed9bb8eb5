package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/config"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/services"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/dmitrijs2005/teachloop/internal/logging"
	"github.com/dmitrijs2005/teachloop/internal/otelx"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Controller is the session controller as the CLI drives it.
type Controller interface {
	Snapshot() session.Snapshot
	Bootstrap(ctx context.Context) (session.Result, error)
	Login(ctx context.Context, email, password string) (session.Result, error)
	Signup(ctx context.Context, email, password, displayName string) (session.Result, error)
	Logout(ctx context.Context) (session.Result, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (session.Result, error)
}

type onlineChecker interface {
	Online(ctx context.Context) bool
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger

	session     Controller
	courses     services.CourseService
	teaching    services.TeachingService
	connections services.ConnectionsService
	progress    services.ProgressService
	profiles    services.ProfileService
	health      onlineChecker

	mu   sync.RWMutex
	mode Mode

	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api, err := client.NewTeachLoopClient(ctx, c.ServerEndpointAddr, client.NewMetadataTokenStore(db),
		client.WithCallTimeout(c.CallTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ctrl := session.New(api, api, logger)
	courses := services.NewCourseService(api)
	teaching := services.NewTeachingService(api, ctrl)
	connections := services.NewConnectionsService(api, ctrl)

	return &App{
		config:      c,
		logger:      logger.With("module", "cli"),
		session:     ctrl,
		courses:     courses,
		teaching:    teaching,
		connections: connections,
		progress:    services.NewProgressService(teaching, courses, connections),
		profiles:    services.NewProfileService(api, ctrl, nil, logger),
		health:      api,
		mode:        ModeOffline,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closers:     []func() error{api.Close, db.Close},
	}, nil
}

// Run starts tracing (when configured) and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	shutdown, err := otelx.Setup(ctx, "teachloop-cli", a.config.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(sctx)
	}()
	defer a.Close()

	a.Root(ctx)
	return nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if a.health.Online(ctx) {
		a.setMode(ctx, ModeOnline)
	} else {
		a.setMode(ctx, ModeOffline)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Identity != nil
}

// StartOnlineStatusWatcher polls the server's health service every
// interval and flips the mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
