package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Malformed input yields -1; callers control the format.
func TimeToMinutes(t string) int {
	h, m, ok := strings.Cut(t, ":")
	if !ok {
		return -1
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return -1
	}
	return hours*60 + minutes
}

// MinutesToTime converts minutes since midnight to a zero-padded 24h "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts an "HH:MM" time by the given number of minutes.
func AddMinutes(t string, mins int) string {
	return MinutesToTime(TimeToMinutes(t) + mins)
}

// SlotID derives the stable identifier for an auto-generated slot from its
// wall-clock position, e.g. "2024-05-01" + "09:00" -> "2024-05-01-0900".
// Regenerating a day's timeline therefore never mints a second ID for the
// same position.
func SlotID(date, startTime string) string {
	return date + "-" + strings.ReplaceAll(startTime, ":", "")
}
