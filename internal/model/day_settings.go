package model

type EndTimeMode string

const (
	EndTimeEarly EndTimeMode = "16:30"
	EndTimeLate  EndTimeMode = "20:00"
)

const (
	DefaultStartTime        = "09:00"
	DefaultProvisionalHours = 24
)

// DaySettings is the per-date configuration that drives slot generation.
type DaySettings struct {
	Date             string      `json:"date"`       // YYYY-MM-DD
	StartTime        string      `json:"start_time"` // HH:MM
	EndTimeMode      EndTimeMode `json:"end_time_mode"`
	LunchBreakOpen   bool        `json:"lunch_break_open"` // true = lunch window is lesson-bookable
	DefaultRoom      string      `json:"default_room"`
	ProvisionalHours int         `json:"provisional_hours"` // 24 or 48
	IsLessonDay      bool        `json:"is_lesson_day"`
}

// DefaultDaySettings is what a date without a stored record resolves to:
// not a lesson day, 09:00 start, late end, lunch closed, 24h hold.
func DefaultDaySettings(date string) *DaySettings {
	return &DaySettings{
		Date:             date,
		StartTime:        DefaultStartTime,
		EndTimeMode:      EndTimeLate,
		LunchBreakOpen:   false,
		ProvisionalHours: DefaultProvisionalHours,
		IsLessonDay:      false,
	}
}
