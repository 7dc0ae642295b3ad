// Package httpapi exposes the scheduling engine to the three roles over
// HTTP. Authentication is a collaborator's concern; the caller identifies
// the acting user with the X-Actor-ID header and the handlers enforce the
// role gates of the state machine.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mwatari/lesson_scheduler/internal/booking"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/service"
	"go.uber.org/zap"
)

const actorHeader = "X-Actor-ID"

type Handler struct {
	timetables   *service.TimetableService
	lessons      *service.LessonService
	availability *service.AvailabilityService
	roster       *service.RosterService
	logger       *zap.Logger
}

func NewHandler(
	timetables *service.TimetableService,
	lessons *service.LessonService,
	availability *service.AvailabilityService,
	roster *service.RosterService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		timetables:   timetables,
		lessons:      lessons,
		availability: availability,
		roster:       roster,
		logger:       logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps engine errors onto HTTP statuses: bad input to 400,
// not-found to 404, rule violations to 409, anything else to 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrSlotNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrSlotNotAvailable),
		errors.Is(err, booking.ErrSlotNotPending),
		errors.Is(err, booking.ErrSlotNotConfirmed),
		errors.Is(err, booking.ErrSlotNotActive),
		errors.Is(err, booking.ErrSlotOccupied),
		errors.Is(err, booking.ErrStudentRequired),
		errors.Is(err, booking.ErrSameDayLimit),
		errors.Is(err, booking.ErrNotSlotOwner),
		errors.Is(err, booking.ErrAccompanistSet),
		errors.Is(err, booking.ErrNotSlotAccompanist):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("Request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// actor resolves the acting user from the request header. The teacher is
// not part of the stored roster, so the fixed teacher ID resolves without a
// lookup.
func (h *Handler) actor(r *http.Request) (*model.User, error) {
	id := r.Header.Get(actorHeader)
	if id == "" {
		return nil, nil
	}
	if id == model.DefaultTeacherID {
		return &model.User{ID: id, Role: model.RoleTeacher}, nil
	}
	return h.roster.GetUser(r.Context(), id)
}

// requireRole writes the error response itself when the actor is missing or
// has the wrong role, returning nil in that case.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, role model.UserRole) *model.User {
	actor, err := h.actor(r)
	if err != nil {
		h.writeServiceError(w, err)
		return nil
	}
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "unknown actor")
		return nil
	}
	if actor.Role != role {
		writeError(w, http.StatusForbidden, "action not allowed for role "+string(actor.Role))
		return nil
	}
	return actor
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
