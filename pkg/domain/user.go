package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText lets UserID render as a plain UUID string in JSON.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseUserID parses the canonical UUID representation of a user ID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)

	return UserID(id), err //nolint: wrapcheck
}

// Role grants access to administrative operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered player. ReferrerID points at the user whose referral
// code was used at sign-up, forming a forest of referral trees.
type User struct {
	ID            UserID    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	ReferralCode  string    `json:"referralCode"`
	ReferrerID    *UserID   `json:"referrerId,omitempty"`
	Role          Role      `json:"role"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	Balance       Amount    `json:"balance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsAdmin reports whether u may moderate deposits and trigger payouts.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// PublicProfile is the subset of User visible to other users.
type PublicProfile struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	ReferralCode string    `json:"referralCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Username:     u.Username,
		ReferralCode: u.ReferralCode,
		CreatedAt:    u.CreatedAt,
	}
}
