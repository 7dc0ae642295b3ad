package booking

import (
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/timetable"
)

// AdjacentConfirmedAccompanists returns the accompanists of the confirmed
// slots immediately before and after the given slot in the day's timeline.
// An accompanist who also declared availability for the slot itself can be
// offered as "recommended: can continue consecutively". Derived at query
// time, never stored.
func AdjacentConfirmedAccompanists(items []timetable.TimeItem, slotID string) []string {
	var slots []*model.LessonSlot
	idx := -1
	for _, item := range items {
		if item.Type != timetable.ItemSlot || item.Slot == nil {
			continue
		}
		if item.Slot.ID == slotID {
			idx = len(slots)
		}
		slots = append(slots, item.Slot)
	}
	if idx < 0 {
		return nil
	}

	var ids []string
	add := func(s *model.LessonSlot) {
		if s == nil || s.Status != model.SlotStatusConfirmed || s.AccompanistID == nil {
			return
		}
		for _, id := range ids {
			if id == *s.AccompanistID {
				return
			}
		}
		ids = append(ids, *s.AccompanistID)
	}
	if idx > 0 {
		add(slots[idx-1])
	}
	if idx+1 < len(slots) {
		add(slots[idx+1])
	}
	return ids
}
