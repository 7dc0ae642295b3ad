package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/days/{date}", func(r chi.Router) {
			r.Get("/timetable", h.GetDayTimetable)
			r.Get("/summary", h.GetDaySummary)
			r.Get("/settings", h.GetDaySettings)
			r.Put("/settings", h.UpsertDaySettings)
			r.Post("/generate", h.GenerateDay)
			r.Post("/slots/open", h.OpenSlot)
		})

		r.Route("/slots/{slotID}", func(r chi.Router) {
			r.Post("/book", h.BookSlot)
			r.Post("/approve", h.ApproveSlot)
			r.Post("/cancel", h.CancelSlot)
			r.Post("/assign", h.AssignSlot)
			r.Post("/reassign", h.ReassignSlot)
			r.Post("/block", h.BlockSlot)
			r.Post("/attach", h.AttachAccompanist)
			r.Post("/detach", h.DetachAccompanist)

			r.Get("/availability", h.ListSlotAvailability)
			r.Post("/availability", h.DeclareAvailability)
			r.Delete("/availability", h.WithdrawAvailability)
			r.Get("/recommended-accompanists", h.RecommendedAccompanists)
		})

		r.Get("/accompanists/{accompanistID}/availability", h.ListAccompanistAvailability)

		r.Get("/slot-list", h.GetLessonSlotList)
		r.Get("/weekly-masters", h.ListWeeklyMasters)
		r.Put("/weekly-masters", h.ReplaceWeeklyMasters)

		r.Route("/roster", func(r chi.Router) {
			r.Get("/students", h.ListStudents)
			r.Get("/accompanists", h.ListAccompanists)
			r.Post("/", h.AddRosterEntry)
			r.Put("/{userID}", h.RenameRosterEntry)
			r.Delete("/{userID}", h.RemoveRosterEntry)
		})
	})

	return r
}
