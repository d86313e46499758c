package v1handler

import (
	"casino/internal/users"
	"casino/pkg/controller"
	"net/http"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.deps.Users.Get(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, user)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var updates users.Updates
	if err := controller.Bind(r, &updates); err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	user, err := h.deps.Users.Update(r.Context(), userID, updates)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, user)
}

// GetUser returns another user's public profile.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	user, err := h.deps.Users.Get(r.Context(), id)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, user.Public())
}
