package storage

import (
	"casino/pkg/domain"
	"context"
)

type PayoutStorage interface {
	// StorePayouts inserts payouts. A second payout for the same deposit and
	// level is reported as ErrDuplicate.
	StorePayouts(ctx context.Context, payouts ...domain.Payout) ([]domain.Payout, error)
	PayoutsByDeposit(ctx context.Context, depositID domain.DepositID) ([]domain.Payout, error)
	// UserPayouts returns the newest limit payouts received by a user.
	UserPayouts(ctx context.Context, beneficiaryID domain.UserID, limit uint) ([]domain.Payout, error)
	UserEarnings(ctx context.Context, beneficiaryID domain.UserID) (domain.Earnings, error)
}
