// Package auth registers and logs in users and verifies their bearer tokens.
package auth

import (
	"casino/internal/config"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
)

const (
	referralCodeLength   = 8
	referralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referralCodeAttempts = 5

	invalidCredentials = "invalid email or password"
)

type Options struct {
	Tokens TokenOptions
	// HashParams tunes argon2id. Nil means argon2id.DefaultParams.
	HashParams *argon2id.Params
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Tokens: TokenOptions{
			PrivateKey: cfg.JWT.PrivateKey,
			PublicKey:  cfg.JWT.PublicKey,
			TTL:        cfg.JWT.TTL,
		},
	}
}

type auth struct {
	storage storage.Storage
	tokens  *TokenCodec
	params  *argon2id.Params
}

func New(storage storage.Storage, options Options) (Service, error) {
	tokens, err := NewTokenCodec(options.Tokens)
	if err != nil {
		return nil, fmt.Errorf("could not create token codec: %w", err)
	}

	params := options.HashParams
	if params == nil {
		params = argon2id.DefaultParams
	}

	return &auth{
		storage: storage,
		tokens:  tokens,
		params:  params,
	}, nil
}

func (a *auth) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.ReferralCode = strings.ToUpper(strings.TrimSpace(input.ReferralCode))

	existing, err := a.storage.UserByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("could not look up email: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "email already registered")
	}

	var referrerID *domain.UserID
	if input.ReferralCode != "" {
		referrer, err := a.storage.UserByReferralCode(ctx, input.ReferralCode)
		if err != nil {
			return nil, fmt.Errorf("could not look up referral code: %w", err)
		}
		if referrer == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid referral code")
		}
		referrerID = &referrer.ID
	}

	hash, err := argon2id.CreateHash(input.Password, a.params)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	var user *domain.User
	for attempt := 0; ; attempt++ {
		code, err := NewReferralCode()
		if err != nil {
			return nil, err
		}

		user, err = a.storage.CreateUser(ctx, domain.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
			ReferralCode: code,
			ReferrerID:   referrerID,
			Role:         domain.RoleUser,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrDuplicate) {
			return nil, fmt.Errorf("could not create user: %w", err)
		}

		switch msg := err.Error(); {
		case strings.Contains(msg, "referral_code") && attempt+1 < referralCodeAttempts:
			logger.Warn(ctx, "referral code collision, retrying", zap.Int("attempt", attempt+1))

			continue
		case strings.Contains(msg, "email"):
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email already registered")
		case strings.Contains(msg, "username"):
			return nil, serrors.Wrap(serrors.ErrConflict, err, "username already taken")
		default:
			return nil, fmt.Errorf("could not create user: %w", err)
		}
	}

	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID), zap.Bool("referred", referrerID != nil))

	return a.session(user)
}

func (a *auth) Login(ctx context.Context, email string, password string) (*Session, error) {
	user, err := a.storage.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("could not look up email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("could not compare password hash: %w", err)
	}
	if !match {
		return nil, serrors.With(serrors.ErrUnauthorized, invalidCredentials)
	}

	return a.session(user)
}

func (a *auth) Authenticate(_ context.Context, token string) (domain.UserID, error) {
	id, err := a.tokens.Parse(token)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid or expired token")
	}

	return id, nil
}

func (a *auth) session(user *domain.User) (*Session, error) {
	token, expiresAt, err := a.tokens.Issue(user.ID)
	if errors.Is(err, ErrSigningDisabled) {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "token issuing is disabled")
	}
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// NewReferralCode returns a random code of unambiguous upper case letters
// and digits.
func NewReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	// 256 is a multiple of the 32 symbol alphabet, so the modulo is unbiased
	for i, b := range buf {
		buf[i] = referralCodeAlphabet[int(b)%len(referralCodeAlphabet)]
	}

	return string(buf), nil
}
