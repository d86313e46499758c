// Package users serves user profiles.
package users

import (
	"casino/internal/config"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"casino/pkg/storage"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

// ValidUsername reports whether name is 3 to 32 letters, digits or underscores.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

type Options struct {
	// ListLimit caps the number of users returned by List.
	ListLimit uint
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		ListLimit: cfg.Users.ListLimit,
	}
}

type users struct {
	options Options
	storage storage.Storage
}

func New(storage storage.Storage, options Options) Service {
	return &users{
		options: options,
		storage: storage,
	}
}

func (u *users) List(ctx context.Context) ([]domain.User, error) {
	list, err := u.storage.ListUsers(ctx, u.options.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return list, nil
}

func (u *users) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := u.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (u *users) Update(ctx context.Context, id domain.UserID, updates Updates) (*domain.User, error) {
	if updates.Username != nil {
		name := strings.TrimSpace(*updates.Username)
		if !ValidUsername(name) {
			return nil, serrors.With(serrors.ErrBadRequest,
				"username must be 3-32 letters, digits or underscores")
		}
		updates.Username = &name
	}
	if updates.WalletAddress != nil {
		wallet := strings.TrimSpace(*updates.WalletAddress)
		updates.WalletAddress = &wallet
	}
	if updates.Username == nil && updates.WalletAddress == nil {
		return u.Get(ctx, id)
	}

	user, err := u.storage.UpdateUser(ctx, id, storage.UserUpdates{
		Username:      updates.Username,
		WalletAddress: updates.WalletAddress,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "username already taken")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
