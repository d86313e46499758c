// Package v1handler implements the HTTP handlers of the API route modules.
package v1handler

import (
	"casino/internal/auth"
	"casino/internal/deposit"
	"casino/internal/mlm"
	"casino/internal/referral"
	"casino/internal/users"
	"casino/pkg/controller"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"casino/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Banner is the plain text body of GET /.
const Banner = "🎰 Crypto Casino API is live"

// Deps are the services behind the route modules.
type Deps struct {
	Users    users.Service
	Auth     auth.Service
	Referral referral.Service
	Deposit  deposit.Service
	MLM      mlm.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// MountInline registers the routes served outside the route modules. The user
// listing exposes private fields, so it is limited to admins.
func (h *Handler) MountInline(r chi.Router, sec *SecHandler) {
	r.Get("/", h.Root)
	r.Get("/api/health", h.Health)
	r.With(sec.RequireAuth, sec.RequireAdmin).Get("/api/ufindusers", h.FindUsers)
}

// Mount registers the route modules on r, in mount table order.
func (h *Handler) Mount(r chi.Router, sec *SecHandler, authLimiter func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(sec.RequireAuth)
		r.Get("/me", h.GetMe)
		r.Patch("/me", h.UpdateMe)
		r.Get("/{userID}", h.GetUser)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(authLimiter)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(sec.RequireAuth).Get("/me", h.GetMe)
	})

	r.Route("/api/tree", func(r chi.Router) {
		r.Use(sec.RequireAuth)
		r.Get("/{userID}", h.GetTree)
	})

	r.Route("/api/referral", func(r chi.Router) {
		r.Use(sec.RequireAuth)
		r.Post("/", h.LinkReferrer)
		r.Get("/code", h.GetReferralCode)
		r.Get("/direct", h.GetDirectReferrals)
		r.Get("/tree", h.GetOwnTree)
		r.Get("/stats", h.GetReferralStats)
	})

	r.Route("/api/deposit", func(r chi.Router) {
		r.Use(sec.RequireAuth)
		r.Post("/", h.CreateDeposit)
		r.Get("/", h.ListDeposits)
		r.Get("/{depositID}", h.GetDeposit)
		r.With(sec.RequireAdmin).Post("/{depositID}/confirm", h.ConfirmDeposit)
		r.With(sec.RequireAdmin).Post("/{depositID}/reject", h.RejectDeposit)
	})

	r.Route("/api/mlm", func(r chi.Router) {
		r.Get("/plan", h.GetPlan)
		r.Group(func(r chi.Router) {
			r.Use(sec.RequireAuth)
			r.Get("/payouts", h.GetPayouts)
			r.Get("/earnings", h.GetEarnings)
			r.With(sec.RequireAdmin).Post("/distribute/{depositID}", h.Distribute)
		})
	})
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Banner))
}

// Health never touches the database.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	controller.WriteMessage(w, http.StatusOK, "API is live")
}

// FindUsers lists registered users. Any data layer failure is reported with a
// fixed message.
func (h *Handler) FindUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Users.List(r.Context())
	if err != nil {
		logger.Error(r.Context(), "error fetching users", zap.Error(err))
		controller.WriteError(w, http.StatusInternalServerError, "Failed to fetch users")

		return
	}

	controller.WriteData(w, http.StatusOK, list)
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	controller.WriteError(w, http.StatusNotFound, "route not found")
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	controller.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func userIDParam(r *http.Request) (domain.UserID, error) {
	id, err := domain.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid user id")
	}

	return id, nil
}

func depositIDParam(r *http.Request) (domain.DepositID, error) {
	id, err := domain.ParseDepositID(chi.URLParam(r, "depositID"))
	if err != nil {
		return domain.DepositID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid deposit id")
	}

	return id, nil
}
