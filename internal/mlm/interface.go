package mlm

import (
	"casino/pkg/domain"
	"context"
)

//go:generate mockgen -package mockmlm -source=interface.go -destination=mock/mockmlm.go *
type Service interface {
	// Plan returns the commission rate of every upline level, level 1 first.
	Plan() []domain.CommissionLevel
	// Distribute pays the upline of a confirmed deposit. It is idempotent:
	// once payouts exist for the deposit they are returned unchanged.
	Distribute(ctx context.Context, depositID domain.DepositID) ([]domain.Payout, error)
	// Enqueue schedules Distribute on the job queue and reports whether a new
	// job was added.
	Enqueue(ctx context.Context, depositID domain.DepositID) (bool, error)
	Payouts(ctx context.Context, userID domain.UserID) ([]domain.Payout, error)
	Earnings(ctx context.Context, userID domain.UserID) (domain.Earnings, error)
}
