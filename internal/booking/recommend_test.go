package booking

import (
	"testing"

	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/timetable"
	"github.com/stretchr/testify/assert"
)

func timelineSlot(id, start, end string, status model.SlotStatus, accompanistID string) timetable.TimeItem {
	slot := &model.LessonSlot{
		ID:        id,
		Date:      "2024-05-01",
		StartTime: start,
		EndTime:   end,
		TeacherID: model.DefaultTeacherID,
		Status:    status,
	}
	if accompanistID != "" {
		slot.AccompanistID = &accompanistID
	}
	return timetable.TimeItem{Type: timetable.ItemSlot, StartTime: start, EndTime: end, Slot: slot}
}

func breakItem(start, end string) timetable.TimeItem {
	return timetable.TimeItem{Type: timetable.ItemBreak, StartTime: start, EndTime: end}
}

func TestAdjacentConfirmedAccompanists(t *testing.T) {
	items := []timetable.TimeItem{
		timelineSlot("s1", "09:00", "09:45", model.SlotStatusConfirmed, "acc-1"),
		timelineSlot("s2", "09:45", "10:30", model.SlotStatusAvailable, ""),
		breakItem("10:30", "10:40"),
		timelineSlot("s3", "10:40", "11:25", model.SlotStatusConfirmed, "acc-2"),
	}

	// Breaks do not interrupt adjacency over lesson slots.
	assert.Equal(t, []string{"acc-1", "acc-2"}, AdjacentConfirmedAccompanists(items, "s2"))
	assert.Empty(t, AdjacentConfirmedAccompanists(items, "s1"))
	assert.Empty(t, AdjacentConfirmedAccompanists(items, "s3"))
}

func TestAdjacentConfirmedAccompanistsSkipsUnconfirmed(t *testing.T) {
	items := []timetable.TimeItem{
		timelineSlot("s1", "09:00", "09:45", model.SlotStatusPending, "acc-1"),
		timelineSlot("s2", "09:45", "10:30", model.SlotStatusAvailable, ""),
		timelineSlot("s3", "10:40", "11:25", model.SlotStatusConfirmed, ""),
	}

	assert.Empty(t, AdjacentConfirmedAccompanists(items, "s2"))
}

func TestAdjacentConfirmedAccompanistsDedupes(t *testing.T) {
	items := []timetable.TimeItem{
		timelineSlot("s1", "09:00", "09:45", model.SlotStatusConfirmed, "acc-1"),
		timelineSlot("s2", "09:45", "10:30", model.SlotStatusAvailable, ""),
		timelineSlot("s3", "10:40", "11:25", model.SlotStatusConfirmed, "acc-1"),
	}

	assert.Equal(t, []string{"acc-1"}, AdjacentConfirmedAccompanists(items, "s2"))
}

func TestAdjacentConfirmedAccompanistsUnknownSlot(t *testing.T) {
	items := []timetable.TimeItem{
		timelineSlot("s1", "09:00", "09:45", model.SlotStatusConfirmed, "acc-1"),
	}

	assert.Nil(t, AdjacentConfirmedAccompanists(items, "missing"))
}
