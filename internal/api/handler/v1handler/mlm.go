package v1handler

import (
	"casino/pkg/controller"
	"net/http"
)

func (h *Handler) GetPlan(w http.ResponseWriter, _ *http.Request) {
	controller.WriteData(w, http.StatusOK, h.deps.MLM.Plan())
}

func (h *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	payouts, err := h.deps.MLM.Payouts(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, payouts)
}

func (h *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	earnings, err := h.deps.MLM.Earnings(r.Context(), userID)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusOK, earnings)
}

// Distribute schedules payout distribution for a confirmed deposit. Enqueued
// is false when a job for the deposit already exists.
func (h *Handler) Distribute(w http.ResponseWriter, r *http.Request) {
	id, err := depositIDParam(r)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	added, err := h.deps.MLM.Enqueue(r.Context(), id)
	if err != nil {
		controller.WriteServiceError(r.Context(), w, err)

		return
	}

	controller.WriteData(w, http.StatusAccepted, map[string]bool{"enqueued": added})
}
