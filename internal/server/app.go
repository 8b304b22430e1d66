// Package server initializes and runs the verifier application. It wires
// the in-memory stores, the auth coordinator and the gRPC endpoint, starts
// the challenge reaper, and handles graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/challenges"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/users"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"

	gs "github.com/dmitrijs2005/zkpauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *auth.Service
	challenges  *challenges.InMemoryRepository
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	ur := users.NewInMemoryRepository()
	cr := challenges.NewInMemoryRepository(c.ChallengeTTL)
	as := auth.NewService(ur, cr, zkp.DefaultParams(), c)

	return &App{config: c, logger: logger, authService: as, challenges: cr}, nil
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

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.logger.Debug(ctx, "challenge reaper started", "interval", app.config.ReapInterval)
		app.challenges.RunReaper(ctx, app.config.ReapInterval)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
