package v1handler

import (
	"casino/internal/auth"
	"casino/pkg/controller"
	"net/http"
)

type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input auth.RegisterInput
	if err := controller.Bind(r, &input); err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	session, err := h.deps.Auth.Register(r.Context(), input)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusCreated, session)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginInput
	if err := controller.Bind(r, &input); err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	session, err := h.deps.Auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, session)
}
