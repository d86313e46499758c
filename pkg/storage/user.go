package storage

import (
	"casino/pkg/domain"
	"context"
)

// UserUpdates lists the profile fields a user may change. Nil fields are kept.
type UserUpdates struct {
	Username      *string
	WalletAddress *string
}

type UserStorage interface {
	// CreateUser inserts a user and returns the stored row. Unique violations
	// on email, username or referral code are reported as ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByReferralCode(ctx context.Context, code string) (*domain.User, error)
	// ListUsers returns at most limit users, oldest first.
	ListUsers(ctx context.Context, limit uint) ([]domain.User, error)
	// UsersByReferrers returns every user directly referred by one of the given users.
	UsersByReferrers(ctx context.Context, referrerIDs ...domain.UserID) ([]domain.User, error)
	// CountReferrals returns how many users id referred directly.
	CountReferrals(ctx context.Context, id domain.UserID) (int, error)
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// LockReferrals blocks until no other transaction is changing referral
	// links and holds that right until the current transaction ends. It fails
	// with ErrNotInTx outside a transaction.
	LockReferrals(ctx context.Context) error
	// SetReferrer sets the referrer of id only when none is set yet and
	// reports whether a row changed.
	SetReferrer(ctx context.Context, id domain.UserID, referrerID domain.UserID) (bool, error)
	// AddBalance adds amount (which may be negative) to the user's balance. A
	// result outside the bigint range is reported as ErrOutOfRange.
	AddBalance(ctx context.Context, id domain.UserID, amount domain.Amount) error
}
