// Package booking holds the slot state machine: pure, actor-gated transition
// functions over slot snapshots. Persistence is the caller's concern; every
// function returns a fresh copy and never mutates its input.
package booking

import (
	"time"

	"github.com/mwatari/lesson_scheduler/internal/model"
)

// hasOtherLesson reports whether the student already holds a pending or
// confirmed slot on the same date, excluding the slot being transitioned.
func hasOtherLesson(studentID, excludeSlotID string, sameDay []*model.LessonSlot) bool {
	for _, s := range sameDay {
		if s.ID == excludeSlotID {
			continue
		}
		if s.IsBooked() && s.StudentID != nil && *s.StudentID == studentID {
			return true
		}
	}
	return false
}

func normalizeHold(hours int) int {
	if hours != 24 && hours != 48 {
		return model.DefaultProvisionalHours
	}
	return hours
}

// Book places a student's provisional hold on an available slot. The hold
// expires provisionalHours later unless the teacher approves it first.
// sameDay must contain the date's other slots for the one-lesson-per-day
// check.
func Book(slot *model.LessonSlot, studentID, accompanistID string, sameDay []*model.LessonSlot, provisionalHours int, now time.Time) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusAvailable {
		return nil, ErrSlotNotAvailable
	}
	if studentID == "" {
		return nil, ErrStudentRequired
	}
	if hasOtherLesson(studentID, slot.ID, sameDay) {
		return nil, ErrSameDayLimit
	}

	next := slot.Clone()
	next.Status = model.SlotStatusPending
	next.StudentID = &studentID
	next.AccompanistID = nil
	if accompanistID != "" {
		next.AccompanistID = &accompanistID
	}
	deadline := now.Add(time.Duration(normalizeHold(provisionalHours)) * time.Hour)
	next.ProvisionalDeadline = &deadline
	return next, nil
}

// Approve confirms a pending booking and releases the provisional deadline.
// Teacher action.
func Approve(slot *model.LessonSlot) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusPending {
		return nil, ErrSlotNotPending
	}
	next := slot.Clone()
	next.Status = model.SlotStatusConfirmed
	next.ProvisionalDeadline = nil
	return next, nil
}

// Assign books a student directly into an available slot as confirmed.
// Teacher action.
func Assign(slot *model.LessonSlot, studentID, accompanistID string, sameDay []*model.LessonSlot) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusAvailable {
		return nil, ErrSlotNotAvailable
	}
	return confirmInto(slot, studentID, accompanistID, sameDay)
}

// Reassign overwrites the student (and accompanist) of a pending or
// confirmed slot, ending up confirmed. Teacher action.
func Reassign(slot *model.LessonSlot, studentID, accompanistID string, sameDay []*model.LessonSlot) (*model.LessonSlot, error) {
	if !slot.IsBooked() {
		return nil, ErrSlotNotActive
	}
	return confirmInto(slot, studentID, accompanistID, sameDay)
}

func confirmInto(slot *model.LessonSlot, studentID, accompanistID string, sameDay []*model.LessonSlot) (*model.LessonSlot, error) {
	if studentID == "" {
		return nil, ErrStudentRequired
	}
	if hasOtherLesson(studentID, slot.ID, sameDay) {
		return nil, ErrSameDayLimit
	}
	next := slot.Clone()
	next.Status = model.SlotStatusConfirmed
	next.StudentID = &studentID
	next.AccompanistID = nil
	if accompanistID != "" {
		next.AccompanistID = &accompanistID
	}
	next.ProvisionalDeadline = nil
	return next, nil
}

// Cancel releases a pending or confirmed slot back to available. The teacher
// may cancel any booking; a student only their own.
func Cancel(slot *model.LessonSlot, actorID string, actorIsTeacher bool) (*model.LessonSlot, error) {
	if !slot.IsBooked() {
		return nil, ErrSlotNotActive
	}
	if !actorIsTeacher {
		if slot.StudentID == nil || *slot.StudentID != actorID {
			return nil, ErrNotSlotOwner
		}
	}
	next := slot.Clone()
	next.Status = model.SlotStatusAvailable
	next.StudentID = nil
	next.AccompanistID = nil
	next.ProvisionalDeadline = nil
	return next, nil
}

// SetAvailable publishes a blocked slot as bookable. Teacher action.
func SetAvailable(slot *model.LessonSlot) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusBlocked {
		return nil, ErrSlotNotActive
	}
	next := slot.Clone()
	next.Status = model.SlotStatusAvailable
	next.StudentID = nil
	next.AccompanistID = nil
	next.ProvisionalDeadline = nil
	return next, nil
}

// SetBlocked withdraws an available slot. Rejected once a student is
// assigned. Teacher action.
func SetBlocked(slot *model.LessonSlot) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusAvailable {
		return nil, ErrSlotNotAvailable
	}
	if slot.StudentID != nil {
		return nil, ErrSlotOccupied
	}
	next := slot.Clone()
	next.Status = model.SlotStatusBlocked
	return next, nil
}

// AttachAccompanist lets an accompanist join a confirmed lesson that has no
// accompanist yet.
func AttachAccompanist(slot *model.LessonSlot, accompanistID string) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusConfirmed {
		return nil, ErrSlotNotConfirmed
	}
	if slot.AccompanistID != nil {
		return nil, ErrAccompanistSet
	}
	next := slot.Clone()
	next.AccompanistID = &accompanistID
	return next, nil
}

// DetachAccompanist lets the assigned accompanist leave a confirmed lesson.
func DetachAccompanist(slot *model.LessonSlot, accompanistID string) (*model.LessonSlot, error) {
	if slot.Status != model.SlotStatusConfirmed {
		return nil, ErrSlotNotConfirmed
	}
	if slot.AccompanistID == nil || *slot.AccompanistID != accompanistID {
		return nil, ErrNotSlotAccompanist
	}
	next := slot.Clone()
	next.AccompanistID = nil
	return next, nil
}
