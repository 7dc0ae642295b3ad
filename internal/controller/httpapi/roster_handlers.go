package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwatari/lesson_scheduler/internal/model"
)

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	users, err := h.roster.ListStudents(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) ListAccompanists(w http.ResponseWriter, r *http.Request) {
	users, err := h.roster.ListAccompanists(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) AddRosterEntry(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req struct {
		Name string         `json:"name"`
		Role model.UserRole `json:"role"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.roster.Add(r.Context(), req.Name, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) RenameRosterEntry(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.roster.Rename(r.Context(), chi.URLParam(r, "userID"), req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveRosterEntry(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	if err := h.roster.Remove(r.Context(), chi.URLParam(r, "userID")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
