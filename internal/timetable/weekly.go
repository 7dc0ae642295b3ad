package timetable

import (
	"github.com/mwatari/lesson_scheduler/internal/model"
)

// referenceDate is a fixed Monday used when a schedule shape is needed
// independent of any calendar date (weekly-master slot numbering).
const referenceDate = "2000-01-03"

// SlotListRow is one row of the canonical day layout: lesson slots get a
// 0-based SlotIndex, break and lunch rows get -1 with the matching flag set.
type SlotListRow struct {
	SlotIndex int    `json:"slot_index"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBreak   bool   `json:"is_break,omitempty"`
	IsLunch   bool   `json:"is_lunch,omitempty"`
}

// ReferenceDaySettings is the canonical day shape weekly-master indices are
// counted against: lunch closed, late end, default start.
func ReferenceDaySettings() *model.DaySettings {
	s := model.DefaultDaySettings(referenceDate)
	s.EndTimeMode = model.EndTimeLate
	s.LunchBreakOpen = false
	return s
}

// LessonSlotList flattens the generated timeline for the given settings into
// index/time rows. It runs against the fixed reference date with no existing
// slots, so the numbering only depends on the settings shape.
func LessonSlotList(settings *model.DaySettings) []SlotListRow {
	items := Generate(referenceDate, settings, nil)
	rows := make([]SlotListRow, 0, len(items))
	slotIndex := 0
	for _, item := range items {
		switch item.Type {
		case ItemBreak:
			rows = append(rows, SlotListRow{SlotIndex: -1, StartTime: item.StartTime, EndTime: item.EndTime, IsBreak: true})
		case ItemLunch:
			rows = append(rows, SlotListRow{SlotIndex: -1, StartTime: item.StartTime, EndTime: item.EndTime, IsLunch: true})
		case ItemSlot:
			rows = append(rows, SlotListRow{SlotIndex: slotIndex, StartTime: item.StartTime, EndTime: item.EndTime})
			slotIndex++
		}
	}
	return rows
}

// ResolveWeeklyMaster returns the template's default student for the given
// weekday and lesson-slot index, or "" when no entry matches.
func ResolveWeeklyMaster(masters []*model.WeeklyMaster, dayOfWeek, slotIndex int) string {
	for _, m := range masters {
		if m.DayOfWeek == dayOfWeek && m.SlotIndex == slotIndex {
			return m.StudentID
		}
	}
	return ""
}
