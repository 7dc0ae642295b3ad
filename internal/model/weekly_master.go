package model

// WeeklyMaster is a recurring default-student template entry. SlotIndex is
// the 0-based position among lesson slots only (breaks and lunch excluded),
// counted on the canonical reference day (lunch closed, late end).
type WeeklyMaster struct {
	DayOfWeek int    `json:"day_of_week"` // 0 = Sunday ... 6 = Saturday
	SlotIndex int    `json:"slot_index"`
	StudentID string `json:"student_id"`
}
