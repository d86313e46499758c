// Package worker runs the River client that processes background jobs.
package worker

import (
	"casino/internal/config"
	"casino/internal/mlm"
	"casino/pkg/logger"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 10

type Options struct {
	// MaxWorkers bounds how many jobs run concurrently on the default queue.
	MaxWorkers int
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Start registers the job workers and starts a River client on dbPool. The
// returned client must be stopped by the caller.
func Start(ctx context.Context, dbPool *pgxpool.Pool, mlm mlm.Service, options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = defaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewPayoutWorker(mlm))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
