package v1handler

import (
	"casino/internal/deposit"
	"casino/pkg/controller"
	"casino/pkg/domain"
	"context"
	"net/http"
)

func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input deposit.CreateInput
	if err := controller.Bind(r, &input); err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	dep, err := h.deps.Deposit.Create(r.Context(), userID, input)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusCreated, dep)
}

func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.deps.Deposit.List(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, list)
}

func (h *Handler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := depositIDParam(r)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	dep, err := h.deps.Deposit.Get(r.Context(), userID, id)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, dep)
}

func (h *Handler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	h.moderateDeposit(w, r, h.deps.Deposit.Confirm)
}

func (h *Handler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	h.moderateDeposit(w, r, h.deps.Deposit.Reject)
}

func (h *Handler) moderateDeposit(w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id domain.DepositID) (*domain.Deposit, error)) {
	id, err := depositIDParam(r)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	dep, err := apply(r.Context(), id)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, dep)
}
