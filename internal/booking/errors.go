package booking

import "errors"

// Rule violations are sentinel errors so callers can branch on them. Every
// rejected transition leaves the input slot unchanged.
var (
	ErrSlotNotFound       = errors.New("slot not found")
	ErrSlotNotAvailable   = errors.New("slot is not available")
	ErrSlotNotPending     = errors.New("slot is not pending")
	ErrSlotNotConfirmed   = errors.New("slot is not confirmed")
	ErrSlotNotActive      = errors.New("slot has no active booking")
	ErrSlotOccupied       = errors.New("slot has a student assigned")
	ErrStudentRequired    = errors.New("student must be selected")
	ErrSameDayLimit       = errors.New("student already has a lesson on this date")
	ErrNotSlotOwner       = errors.New("booking belongs to another student")
	ErrAccompanistSet     = errors.New("slot already has an accompanist")
	ErrNotSlotAccompanist = errors.New("accompanist is not assigned to this slot")
)
