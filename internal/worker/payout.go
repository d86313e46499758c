package worker

import (
	"casino/internal/mlm"
	"casino/pkg/logger"
	"casino/pkg/serrors"
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PayoutWorker distributes referral commissions for a confirmed deposit.
// Distribution is idempotent per deposit, so retries never pay twice.
type PayoutWorker struct {
	river.WorkerDefaults[mlm.JobArgs]

	mlm mlm.Service
}

func NewPayoutWorker(mlm mlm.Service) *PayoutWorker {
	return &PayoutWorker{mlm: mlm}
}

func (p *PayoutWorker) Work(ctx context.Context, job *river.Job[mlm.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer("depositID", job.Args.DepositID))

	payouts, err := p.mlm.Distribute(ctx, job.Args.DepositID)
	if err != nil {
		// retrying cannot fix a missing or unconfirmed deposit
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrConflict) {
			logger.Warn(ctx, "cancelling payout job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error distributing payouts", zap.Error(err))

		return fmt.Errorf("could not distribute payouts: %w", err)
	}

	logger.Info(ctx, "payout job done", zap.Int("payouts", len(payouts)))

	return nil
}
