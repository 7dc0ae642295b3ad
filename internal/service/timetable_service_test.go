package service

import (
	"context"
	"testing"

	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUpsertDaySettingsRejectsBadValues(t *testing.T) {
	svc := NewTimetableService(nil, nil, nil, nil, zap.NewNop())

	tests := []struct {
		name   string
		mutate func(*model.DaySettings)
	}{
		{"end mode not a preset", func(s *model.DaySettings) { s.EndTimeMode = "17:00" }},
		{"provisional hours not 24 or 48", func(s *model.DaySettings) { s.ProvisionalHours = 12 }},
		{"zero provisional hours", func(s *model.DaySettings) { s.ProvisionalHours = 0 }},
		{"malformed start time", func(s *model.DaySettings) { s.StartTime = "morning" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.DefaultDaySettings("2024-05-01")
			tt.mutate(settings)

			err := svc.UpsertDaySettings(context.Background(), settings)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGenerateDayRejectsBadDate(t *testing.T) {
	svc := NewTimetableService(nil, nil, nil, nil, zap.NewNop())

	// Unparseable dates fail before any lookup.
	_, err := svc.GenerateDay(context.Background(), "2024-05-32", model.EndTimeEarly)
	assert.Error(t, err)
}

func TestReplaceWeeklyMastersRejectsBadEntries(t *testing.T) {
	svc := NewTimetableService(nil, nil, nil, nil, zap.NewNop())

	tests := []struct {
		name   string
		master *model.WeeklyMaster
	}{
		{"day of week out of range", &model.WeeklyMaster{DayOfWeek: 7, SlotIndex: 0, StudentID: "student-1"}},
		{"negative day of week", &model.WeeklyMaster{DayOfWeek: -1, SlotIndex: 0, StudentID: "student-1"}},
		{"negative slot index", &model.WeeklyMaster{DayOfWeek: 1, SlotIndex: -1, StudentID: "student-1"}},
		{"slot index past last lesson slot", &model.WeeklyMaster{DayOfWeek: 1, SlotIndex: 12, StudentID: "student-1"}},
		{"missing student", &model.WeeklyMaster{DayOfWeek: 1, SlotIndex: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ReplaceWeeklyMasters(context.Background(), []*model.WeeklyMaster{tt.master})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
