// Package server wires the TeachLoop backend together: configuration,
// PostgreSQL, migrations, services, tracing and the gRPC endpoint. It also
// handles graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/logging"
	"github.com/dmitrijs2005/teachloop/internal/otelx"
	"github.com/dmitrijs2005/teachloop/internal/server/config"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teachloop/internal/server/services"

	gs "github.com/dmitrijs2005/teachloop/internal/server/grpc"
)

const serviceName = "teachloop-server"

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *services.AccountService
	profiles *services.ProfileService
	courses  *services.CourseService
	storage  *services.StorageService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		accounts: services.NewAccountService(db, rm, c),
		profiles: services.NewProfileService(db, rm),
		courses:  services.NewCourseService(db, rm),
		storage:  services.NewStorageService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts, app.profiles, app.courses, app.storage)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	shutdownTracing, err := otelx.Setup(ctx, serviceName, app.config.OTLPEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if err := shutdownTracing(flushCtx); err != nil {
		app.logger.Warn(flushCtx, "tracing shutdown", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(flushCtx, "closing database", "error", err)
	}

	app.logger.Info(flushCtx, "App stopped")
}
