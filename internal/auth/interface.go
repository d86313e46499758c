package auth

import (
	"casino/pkg/domain"
	"context"
	"time"
)

type RegisterInput struct {
	Username string `json:"username"     validate:"required,min=3,max=32"`
	Email    string `json:"email"        validate:"required,email,max=320"`
	Password string `json:"password"     validate:"required,min=8,max=128"`
	// ReferralCode is the code of the inviting user, if any.
	ReferralCode string `json:"referralCode" validate:"omitempty,max=16"`
}

// Session is returned on successful registration or login.
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	// Login fails with the same unauthorized error for unknown emails and
	// wrong passwords.
	Login(ctx context.Context, email string, password string) (*Session, error)
	// Authenticate verifies a bearer token and returns its subject.
	Authenticate(ctx context.Context, token string) (domain.UserID, error)
}
