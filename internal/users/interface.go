package users

import (
	"casino/pkg/domain"
	"context"
)

// Updates lists the profile fields a user may change. Nil fields are kept.
type Updates struct {
	Username      *string `json:"username"      validate:"omitempty,min=3,max=32"`
	WalletAddress *string `json:"walletAddress" validate:"omitempty,max=128"`
}

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Service interface {
	// List returns registered users, oldest first, bounded by the configured limit.
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id domain.UserID) (*domain.User, error)
	Update(ctx context.Context, id domain.UserID, updates Updates) (*domain.User, error)
}
