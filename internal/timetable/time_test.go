package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:10", 730},
		{"13:00", 780},
		{"20:00", 1200},
		{"09:05", 545},
		{"garbage", -1},
		{"12", -1},
		{"ab:cd", -1},
		{"", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeToMinutes(tt.in), "input %q", tt.in)
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{730, "12:10"},
		{1200, "20:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinutesToTime(tt.in), "input %d", tt.in)
	}
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "09:45", AddMinutes("09:00", 45))
	assert.Equal(t, "10:40", AddMinutes("10:30", 10))
	assert.Equal(t, "13:00", AddMinutes("12:15", 45))
	assert.Equal(t, "08:15", AddMinutes("09:00", -45))
}

func TestSlotID(t *testing.T) {
	assert.Equal(t, "2024-05-01-0900", SlotID("2024-05-01", "09:00"))
	assert.Equal(t, "2024-05-01-1210", SlotID("2024-05-01", "12:10"))
}
