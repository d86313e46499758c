package deposit

import (
	"casino/pkg/domain"
	"context"
)

type CreateInput struct {
	Amount   domain.Amount `json:"amount"   validate:"gt=0,lte=1000000000000000000"`
	Currency string        `json:"currency" validate:"required,alphanum,max=16"`
	TxHash   string        `json:"txHash"   validate:"required,max=128"`
}

//go:generate mockgen -package mockdeposit -source=interface.go -destination=mock/mockdeposit.go *
type Service interface {
	// Create records a PENDING deposit for userID.
	Create(ctx context.Context, userID domain.UserID, input CreateInput) (*domain.Deposit, error)
	// List returns the newest deposits of userID.
	List(ctx context.Context, userID domain.UserID) ([]domain.Deposit, error)
	// Get returns a deposit owned by requesterID. Admins may read any deposit.
	Get(ctx context.Context, requesterID domain.UserID, depositID domain.DepositID) (*domain.Deposit, error)
	// Confirm credits a PENDING deposit and schedules its referral payouts.
	Confirm(ctx context.Context, depositID domain.DepositID) (*domain.Deposit, error)
	Reject(ctx context.Context, depositID domain.DepositID) (*domain.Deposit, error)
}
