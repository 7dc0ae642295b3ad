package booking

import (
	"time"

	"github.com/mwatari/lesson_scheduler/internal/model"
)

// ExpireProvisional sweeps a snapshot for pending slots whose provisional
// deadline has passed and releases each back to available. Untouched slots
// are returned as-is, so re-running the sweep when nothing has expired is a
// no-op.
func ExpireProvisional(slots []*model.LessonSlot, now time.Time) (next []*model.LessonSlot, expired []*model.LessonSlot) {
	next = make([]*model.LessonSlot, len(slots))
	for i, s := range slots {
		if s.Status == model.SlotStatusPending && s.ProvisionalDeadline != nil && s.ProvisionalDeadline.Before(now) {
			released := s.Clone()
			released.Status = model.SlotStatusAvailable
			released.StudentID = nil
			released.AccompanistID = nil
			released.ProvisionalDeadline = nil
			next[i] = released
			expired = append(expired, released)
			continue
		}
		next[i] = s
	}
	return next, expired
}
