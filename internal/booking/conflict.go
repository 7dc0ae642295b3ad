package booking

import (
	"github.com/mwatari/lesson_scheduler/internal/model"
)

// ConflictingAvailabilities lists the availability records made moot when a
// slot's accompanist assignment is confirmed: records of the same
// accompanist for a different slot at the identical date and start time.
// The accompanist cannot stay "available" for two lessons at the same
// wall-clock position once one is locked in.
func ConflictingAvailabilities(confirmed *model.LessonSlot, slots []*model.LessonSlot, avails []*model.AccompanistAvailability) []*model.AccompanistAvailability {
	if confirmed.AccompanistID == nil {
		return nil
	}
	accompanistID := *confirmed.AccompanistID

	byID := make(map[string]*model.LessonSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	var conflicts []*model.AccompanistAvailability
	for _, a := range avails {
		if a.AccompanistID != accompanistID || a.SlotID == confirmed.ID {
			continue
		}
		other, ok := byID[a.SlotID]
		if !ok {
			continue
		}
		if other.Date == confirmed.Date && other.StartTime == confirmed.StartTime {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts
}
