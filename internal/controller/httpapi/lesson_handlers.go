package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwatari/lesson_scheduler/internal/model"
)

type assignRequest struct {
	StudentID     string `json:"student_id"`
	AccompanistID string `json:"accompanist_id"`
}

func (h *Handler) BookSlot(w http.ResponseWriter, r *http.Request) {
	actor := h.requireRole(w, r, model.RoleStudent)
	if actor == nil {
		return
	}

	var req struct {
		AccompanistID string `json:"accompanist_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	slot, err := h.lessons.Book(r.Context(), chi.URLParam(r, "slotID"), actor.ID, req.AccompanistID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) ApproveSlot(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	slot, err := h.lessons.Approve(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) CancelSlot(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "unknown actor")
		return
	}
	if !actor.IsTeacher() && !actor.IsStudent() {
		writeError(w, http.StatusForbidden, "action not allowed for role "+string(actor.Role))
		return
	}

	slot, err := h.lessons.Cancel(r.Context(), chi.URLParam(r, "slotID"), actor.ID, actor.IsTeacher())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) AssignSlot(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req assignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	slot, err := h.lessons.Assign(r.Context(), chi.URLParam(r, "slotID"), req.StudentID, req.AccompanistID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) ReassignSlot(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req assignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	slot, err := h.lessons.Reassign(r.Context(), chi.URLParam(r, "slotID"), req.StudentID, req.AccompanistID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

// OpenSlot publishes the position at (date, start_time) as bookable,
// materializing the slot record on first touch.
func (h *Handler) OpenSlot(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req struct {
		StartTime string `json:"start_time"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StartTime == "" {
		writeError(w, http.StatusBadRequest, "start_time is required")
		return
	}

	slot, err := h.lessons.OpenSlot(r.Context(), chi.URLParam(r, "date"), req.StartTime)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	slot, err := h.lessons.BlockSlot(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) AttachAccompanist(w http.ResponseWriter, r *http.Request) {
	actor := h.requireRole(w, r, model.RoleAccompanist)
	if actor == nil {
		return
	}

	slot, err := h.lessons.AttachAccompanist(r.Context(), chi.URLParam(r, "slotID"), actor.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}

func (h *Handler) DetachAccompanist(w http.ResponseWriter, r *http.Request) {
	actor := h.requireRole(w, r, model.RoleAccompanist)
	if actor == nil {
		return
	}

	slot, err := h.lessons.DetachAccompanist(r.Context(), chi.URLParam(r, "slotID"), actor.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slot)
}
