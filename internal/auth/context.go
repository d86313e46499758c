package auth

import (
	"casino/pkg/domain"
	"context"
)

type userIDKey struct{}

// WithUserID stores the authenticated user in ctx.
func WithUserID(ctx context.Context, id domain.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromContext returns the authenticated user stored by WithUserID.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userIDKey{}).(domain.UserID)

	return id, ok
}
