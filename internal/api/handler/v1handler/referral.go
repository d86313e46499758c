package v1handler

import (
	"casino/pkg/controller"
	"casino/pkg/domain"
	"casino/pkg/serrors"
	"net/http"
	"strconv"
)

type LinkInput struct {
	Code string `json:"code" validate:"required,max=16"`
}

// GetTree serves /api/tree/{userID}?depth=n. A missing depth means the
// configured maximum.
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	h.writeTree(w, r, id)
}

func (h *Handler) GetOwnTree(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	h.writeTree(w, r, userID)
}

func (h *Handler) writeTree(w http.ResponseWriter, r *http.Request, rootID domain.UserID) {
	depth := 0
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 {
			controller.WriteServiceError(r.Context(), w,
				serrors.With(serrors.ErrBadRequest, "depth must be a non-negative integer"))

			return
		}
		depth = d
	}

	tree, err := h.deps.Referral.Tree(r.Context(), rootID, depth)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, tree)
}

func (h *Handler) LinkReferrer(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input LinkInput
	if err := controller.Bind(r, &input); err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	user, err := h.deps.Referral.Link(r.Context(), userID, input.Code)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, user)
}

func (h *Handler) GetReferralCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	code, err := h.deps.Referral.Code(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, map[string]string{"code": code})
}

func (h *Handler) GetDirectReferrals(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	direct, err := h.deps.Referral.Direct(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, direct)
}

func (h *Handler) GetReferralStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.deps.Referral.Stats(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, stats)
}
