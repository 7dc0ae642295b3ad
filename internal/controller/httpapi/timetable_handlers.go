package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/timetable"
)

func (h *Handler) GetDayTimetable(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	items, settings, err := h.timetables.GetDayTimetable(r.Context(), date)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"settings": settings,
		"items":    items,
	})
}

func (h *Handler) GetDaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.timetables.GetDaySummary(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetDaySettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.timetables.GetDaySettings(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpsertDaySettings(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var settings model.DaySettings
	if !decodeBody(w, r, &settings) {
		return
	}
	settings.Date = chi.URLParam(r, "date")

	if err := h.timetables.UpsertDaySettings(r.Context(), &settings); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) GenerateDay(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var req struct {
		EndTimeMode model.EndTimeMode `json:"end_time_mode"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	items, err := h.timetables.GenerateDay(r.Context(), chi.URLParam(r, "date"), req.EndTimeMode)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"items": items})
}

// GetLessonSlotList returns the canonical slot numbering used by the
// weekly-master editor. Optional query parameters tweak the day shape.
func (h *Handler) GetLessonSlotList(w http.ResponseWriter, r *http.Request) {
	settings := timetable.ReferenceDaySettings()
	if mode := r.URL.Query().Get("end_time_mode"); mode != "" {
		settings.EndTimeMode = model.EndTimeMode(mode)
	}
	if r.URL.Query().Get("lunch_break_open") == "true" {
		settings.LunchBreakOpen = true
	}

	writeJSON(w, http.StatusOK, h.timetables.LessonSlotList(settings))
}

func (h *Handler) ListWeeklyMasters(w http.ResponseWriter, r *http.Request) {
	masters, err := h.timetables.ListWeeklyMasters(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, masters)
}

func (h *Handler) ReplaceWeeklyMasters(w http.ResponseWriter, r *http.Request) {
	if h.requireRole(w, r, model.RoleTeacher) == nil {
		return
	}

	var masters []*model.WeeklyMaster
	if !decodeBody(w, r, &masters) {
		return
	}

	if err := h.timetables.ReplaceWeeklyMasters(r.Context(), masters); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, masters)
}
