package storage

import (
	"casino/pkg/domain"
	"context"
)

type DepositStorage interface {
	// StoreDeposit inserts a deposit. A reused transaction hash is reported as ErrDuplicate.
	StoreDeposit(ctx context.Context, deposit domain.Deposit) (*domain.Deposit, error)
	DepositByID(ctx context.Context, id domain.DepositID) (*domain.Deposit, error)
	// UserDeposits returns the newest limit deposits of a user.
	UserDeposits(ctx context.Context, userID domain.UserID, limit uint) ([]domain.Deposit, error)
	// TransitionDeposit moves a deposit from one status to another and returns
	// the updated row, or nil when the deposit is missing or not in from.
	TransitionDeposit(ctx context.Context,
		id domain.DepositID,
		from domain.DepositStatus,
		to domain.DepositStatus) (*domain.Deposit, error)
}
