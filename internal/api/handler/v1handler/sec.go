package v1handler

import (
	"casino/internal/auth"
	"casino/internal/users"
	"casino/pkg/controller"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const bearerPrefix = "bearer "

// SecHandler authenticates bearer tokens and authorizes admin routes.
type SecHandler struct {
	auth  auth.Service
	users users.Service
}

func NewSecHandler(auth auth.Service, users users.Service) *SecHandler {
	return &SecHandler{auth: auth, users: users}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (s *SecHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			controller.WriteError(w, http.StatusUnauthorized, "missing bearer token")

			return
		}

		userID, err := s.auth.Authenticate(r.Context(), strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			controller.WriteServiceError(r.Context(), w, err)

			return
		}

		ctx := auth.WithUserID(r.Context(), userID)
		ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after RequireAuth.
func (s *SecHandler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			controller.WriteError(w, http.StatusUnauthorized, "unauthorized")

			return
		}

		user, err := s.users.Get(r.Context(), userID)
		if err != nil {
			controller.WriteServiceError(r.Context(), w, err)

			return
		}
		if !user.IsAdmin() {
			logger.Warn(r.Context(), "admin route refused")
			controller.WriteError(w, http.StatusForbidden, "admin access required")

			return
		}

		next.ServeHTTP(w, r)
	})
}

// currentUser returns the subject stored by RequireAuth. Handlers mounted
// behind RequireAuth always find one.
func currentUser(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		controller.WriteError(w, http.StatusUnauthorized, "unauthorized")
	}

	return userID, ok
}
