package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwatari/lesson_scheduler/internal/model"
)

func (h *Handler) DeclareAvailability(w http.ResponseWriter, r *http.Request) {
	actor := h.requireRole(w, r, model.RoleAccompanist)
	if actor == nil {
		return
	}

	a, err := h.availability.Declare(r.Context(), chi.URLParam(r, "slotID"), actor.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) WithdrawAvailability(w http.ResponseWriter, r *http.Request) {
	actor := h.requireRole(w, r, model.RoleAccompanist)
	if actor == nil {
		return
	}

	if err := h.availability.Withdraw(r.Context(), chi.URLParam(r, "slotID"), actor.ID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSlotAvailability(w http.ResponseWriter, r *http.Request) {
	avails, err := h.availability.ListForSlot(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, avails)
}

func (h *Handler) ListAccompanistAvailability(w http.ResponseWriter, r *http.Request) {
	avails, err := h.availability.ListForAccompanist(r.Context(), chi.URLParam(r, "accompanistID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, avails)
}

func (h *Handler) RecommendedAccompanists(w http.ResponseWriter, r *http.Request) {
	ids, err := h.availability.Recommended(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"accompanist_ids": ids})
}
