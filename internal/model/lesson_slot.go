package model

import "time"

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available" // published by the teacher, bookable
	SlotStatusPending   SlotStatus = "pending"   // provisional hold, awaiting teacher approval
	SlotStatusConfirmed SlotStatus = "confirmed" // approved lesson
	SlotStatusBlocked   SlotStatus = "blocked"   // not offered by the teacher
	SlotStatusBreak     SlotStatus = "break"     // display only, never persisted
	SlotStatusLunch     SlotStatus = "lunch"     // display only, never persisted
)

type LessonSlot struct {
	ID                  string     `json:"id"`
	Date                string     `json:"date"`       // YYYY-MM-DD, local wall clock
	StartTime           string     `json:"start_time"` // HH:MM
	EndTime             string     `json:"end_time"`   // HH:MM
	RoomName            string     `json:"room_name"`
	TeacherID           string     `json:"teacher_id"`
	StudentID           *string    `json:"student_id"`
	AccompanistID       *string    `json:"accompanist_id"`
	Status              SlotStatus `json:"status"`
	ProvisionalDeadline *time.Time `json:"provisional_deadline"`
	CreatedAt           time.Time  `json:"created_at"`
}

// IsBooked reports whether a student currently holds the slot.
func (s *LessonSlot) IsBooked() bool {
	return s.Status == SlotStatusPending || s.Status == SlotStatusConfirmed
}

// Clone returns a shallow copy. Transitions operate copy-on-write so a
// rejected action leaves the caller's snapshot untouched.
func (s *LessonSlot) Clone() *LessonSlot {
	c := *s
	return &c
}
