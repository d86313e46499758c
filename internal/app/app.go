// Package app runs the bootstrap sequence of the service: connect to the
// database, start the workers, mount the routes and serve until stopped.
package app

import (
	"casino/internal/api"
	"casino/internal/api/handler/v1handler"
	"casino/internal/auth"
	"casino/internal/config"
	"casino/internal/deposit"
	"casino/internal/mlm"
	"casino/internal/referral"
	"casino/internal/users"
	"casino/internal/worker"
	"casino/pkg/logger"
	"casino/pkg/storage/postgres"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// State is a step of the bootstrap sequence.
type State string

const (
	StateInit       State = "INIT"
	StateConnecting State = "CONNECTING"
	StateReady      State = "READY"
	// StateFailed is terminal; the listener is never bound.
	StateFailed State = "FAILED"
)

type App struct {
	cfg *config.Config

	mu    sync.RWMutex
	state State
	addr  net.Addr
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg, state: StateInit}
}

func (a *App) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.state
}

// Addr returns the bound listener address once the app is READY.
func (a *App) Addr() net.Addr {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.addr
}

func (a *App) setState(ctx context.Context, state State) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	logger.Info(ctx, "app state changed", zap.String("state", string(state)))
}

func (a *App) fail(ctx context.Context, err error) error {
	a.setState(ctx, StateFailed)
	logger.Error(ctx, "bootstrap failed", zap.Error(err))

	return err
}

// Run blocks until ctx is cancelled or the server stops on its own. Shutdown
// stops the server first, then the workers, then the database pool, all
// bounded by the graceful shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	cfg := a.cfg

	a.setState(ctx, StateConnecting)
	strg, err := postgres.New(ctx, postgres.Options{
		URI:                cfg.Database.URI,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
	})
	if err != nil {
		return a.fail(ctx, fmt.Errorf("could not create postgres storage: %w", err))
	}
	defer func() {
		logger.Info(ctx, "closing postgres client...")
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}()

	authSvc, err := auth.New(strg, auth.NewOptions(cfg))
	if err != nil {
		return a.fail(ctx, fmt.Errorf("could not create auth service: %w", err))
	}
	mlmSvc := mlm.New(strg, mlm.NewOptions(cfg))

	// workers drain through Stop rather than dying with ctx
	riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, mlmSvc, worker.NewOptions(cfg))
	if err != nil {
		return a.fail(ctx, fmt.Errorf("could not start workers: %w", err))
	}

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Users:    users.New(strg, users.NewOptions(cfg)),
			Auth:     authSvc,
			Referral: referral.New(strg, referral.NewOptions(cfg)),
			Deposit:  deposit.New(strg, deposit.NewOptions(cfg)),
			MLM:      mlmSvc,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		_ = riverClient.Stop(context.WithoutCancel(ctx))

		return a.fail(ctx, fmt.Errorf("could not create webserver: %w", err))
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		_ = riverClient.Stop(context.WithoutCancel(ctx))

		return a.fail(ctx, fmt.Errorf("could not listen on %s: %w", server.Addr, err))
	}

	a.mu.Lock()
	a.addr = ln.Addr()
	a.mu.Unlock()
	a.setState(ctx, StateReady)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.Stringer("addr", ln.Addr()))
		serveErr <- server.Serve(ln)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("webserver stopped: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
	defer cancel()

	logger.Info(ctx, "stopping webserver...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "could not stop webserver", zap.Error(err))
	}

	logger.Info(ctx, "stopping workers...")
	if err := riverClient.Stop(shutdownCtx); err != nil {
		logger.Error(ctx, "could not stop workers", zap.Error(err))
	}

	return runErr
}
