package model

import "time"

// AccompanistAvailability is a declaration that an accompanist can play for
// a specific slot. At most one record exists per (slot, accompanist) pair.
type AccompanistAvailability struct {
	ID            string    `json:"id"`
	SlotID        string    `json:"slot_id"`
	AccompanistID string    `json:"accompanist_id"`
	CreatedAt     time.Time `json:"created_at"`
}
