package timetable

import (
	"testing"

	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonSlotListReferenceDay(t *testing.T) {
	rows := LessonSlotList(ReferenceDaySettings())
	require.Len(t, rows, 18)

	var slotRows, breakRows, lunchRows int
	lastIndex := -1
	for _, row := range rows {
		switch {
		case row.IsBreak:
			breakRows++
			assert.Equal(t, -1, row.SlotIndex)
		case row.IsLunch:
			lunchRows++
			assert.Equal(t, -1, row.SlotIndex)
		default:
			assert.Equal(t, lastIndex+1, row.SlotIndex)
			lastIndex = row.SlotIndex
			slotRows++
		}
	}
	assert.Equal(t, 12, slotRows)
	assert.Equal(t, 5, breakRows)
	assert.Equal(t, 1, lunchRows)

	assert.Equal(t, SlotListRow{SlotIndex: 0, StartTime: "09:00", EndTime: "09:45"}, rows[0])
	assert.Equal(t, SlotListRow{SlotIndex: 11, StartTime: "18:45", EndTime: "19:30"}, rows[16])
}

func TestLessonSlotListEarlyEnd(t *testing.T) {
	settings := ReferenceDaySettings()
	settings.EndTimeMode = model.EndTimeEarly

	rows := LessonSlotList(settings)

	maxIndex := -1
	for _, row := range rows {
		if row.SlotIndex > maxIndex {
			maxIndex = row.SlotIndex
		}
	}
	assert.Equal(t, 7, maxIndex)
}

func TestResolveWeeklyMaster(t *testing.T) {
	masters := []*model.WeeklyMaster{
		{DayOfWeek: 1, SlotIndex: 0, StudentID: "student-a"},
		{DayOfWeek: 1, SlotIndex: 3, StudentID: "student-b"},
		{DayOfWeek: 5, SlotIndex: 0, StudentID: "student-c"},
	}

	assert.Equal(t, "student-a", ResolveWeeklyMaster(masters, 1, 0))
	assert.Equal(t, "student-b", ResolveWeeklyMaster(masters, 1, 3))
	assert.Equal(t, "student-c", ResolveWeeklyMaster(masters, 5, 0))
	assert.Empty(t, ResolveWeeklyMaster(masters, 1, 1))
	assert.Empty(t, ResolveWeeklyMaster(masters, 2, 0))
	assert.Empty(t, ResolveWeeklyMaster(nil, 1, 0))
}
