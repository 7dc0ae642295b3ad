package booking

import (
	"testing"
	"time"

	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func slotWith(id string, status model.SlotStatus) *model.LessonSlot {
	return &model.LessonSlot{
		ID:        id,
		Date:      "2024-05-01",
		StartTime: "09:00",
		EndTime:   "09:45",
		TeacherID: model.DefaultTeacherID,
		Status:    status,
	}
}

func bookedSlot(id string, status model.SlotStatus, studentID string) *model.LessonSlot {
	s := slotWith(id, status)
	s.StudentID = &studentID
	return s
}

func TestBook(t *testing.T) {
	slot := slotWith("s1", model.SlotStatusAvailable)

	next, err := Book(slot, "student-1", "", nil, 24, testNow)
	require.NoError(t, err)

	assert.Equal(t, model.SlotStatusPending, next.Status)
	require.NotNil(t, next.StudentID)
	assert.Equal(t, "student-1", *next.StudentID)
	assert.Nil(t, next.AccompanistID)
	require.NotNil(t, next.ProvisionalDeadline)
	assert.Equal(t, testNow.Add(24*time.Hour), *next.ProvisionalDeadline)

	// Copy-on-write: the input snapshot is untouched.
	assert.Equal(t, model.SlotStatusAvailable, slot.Status)
	assert.Nil(t, slot.StudentID)
}

func TestBookWithAccompanist(t *testing.T) {
	next, err := Book(slotWith("s1", model.SlotStatusAvailable), "student-1", "acc-1", nil, 48, testNow)
	require.NoError(t, err)

	require.NotNil(t, next.AccompanistID)
	assert.Equal(t, "acc-1", *next.AccompanistID)
	assert.Equal(t, testNow.Add(48*time.Hour), *next.ProvisionalDeadline)
}

func TestBookNormalizesHoldHours(t *testing.T) {
	next, err := Book(slotWith("s1", model.SlotStatusAvailable), "student-1", "", nil, 7, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(24*time.Hour), *next.ProvisionalDeadline)
}

func TestBookRejections(t *testing.T) {
	tests := []struct {
		name      string
		slot      *model.LessonSlot
		studentID string
		sameDay   []*model.LessonSlot
		wantErr   error
	}{
		{
			name:      "pending slot",
			slot:      slotWith("s1", model.SlotStatusPending),
			studentID: "student-1",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name:      "confirmed slot",
			slot:      slotWith("s1", model.SlotStatusConfirmed),
			studentID: "student-1",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name:      "blocked slot",
			slot:      slotWith("s1", model.SlotStatusBlocked),
			studentID: "student-1",
			wantErr:   ErrSlotNotAvailable,
		},
		{
			name:    "missing student",
			slot:    slotWith("s1", model.SlotStatusAvailable),
			wantErr: ErrStudentRequired,
		},
		{
			name:      "second lesson same day",
			slot:      slotWith("s1", model.SlotStatusAvailable),
			studentID: "student-1",
			sameDay:   []*model.LessonSlot{bookedSlot("s2", model.SlotStatusPending, "student-1")},
			wantErr:   ErrSameDayLimit,
		},
		{
			name:      "second lesson same day confirmed",
			slot:      slotWith("s1", model.SlotStatusAvailable),
			studentID: "student-1",
			sameDay:   []*model.LessonSlot{bookedSlot("s2", model.SlotStatusConfirmed, "student-1")},
			wantErr:   ErrSameDayLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Book(tt.slot, tt.studentID, "", tt.sameDay, 24, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, next)
		})
	}
}

func TestBookIgnoresOtherStudentsAndOwnSlot(t *testing.T) {
	sameDay := []*model.LessonSlot{
		bookedSlot("s1", model.SlotStatusConfirmed, "student-2"),
		bookedSlot("target", model.SlotStatusAvailable, "student-1"),
	}

	_, err := Book(slotWith("target", model.SlotStatusAvailable), "student-1", "", sameDay, 24, testNow)
	assert.NoError(t, err)
}

func TestApprove(t *testing.T) {
	slot := bookedSlot("s1", model.SlotStatusPending, "student-1")
	deadline := testNow.Add(24 * time.Hour)
	slot.ProvisionalDeadline = &deadline

	next, err := Approve(slot)
	require.NoError(t, err)

	assert.Equal(t, model.SlotStatusConfirmed, next.Status)
	assert.Nil(t, next.ProvisionalDeadline)
	require.NotNil(t, next.StudentID)
	assert.Equal(t, "student-1", *next.StudentID)
}

func TestApproveRejectsNonPending(t *testing.T) {
	for _, status := range []model.SlotStatus{model.SlotStatusAvailable, model.SlotStatusConfirmed, model.SlotStatusBlocked} {
		_, err := Approve(slotWith("s1", status))
		assert.ErrorIs(t, err, ErrSlotNotPending, "status %s", status)
	}
}

func TestAssign(t *testing.T) {
	next, err := Assign(slotWith("s1", model.SlotStatusAvailable), "student-1", "acc-1", nil)
	require.NoError(t, err)

	assert.Equal(t, model.SlotStatusConfirmed, next.Status)
	assert.Equal(t, "student-1", *next.StudentID)
	assert.Equal(t, "acc-1", *next.AccompanistID)
	assert.Nil(t, next.ProvisionalDeadline)
}

func TestAssignRejections(t *testing.T) {
	_, err := Assign(slotWith("s1", model.SlotStatusBlocked), "student-1", "", nil)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = Assign(slotWith("s1", model.SlotStatusAvailable), "", "", nil)
	assert.ErrorIs(t, err, ErrStudentRequired)

	sameDay := []*model.LessonSlot{bookedSlot("s2", model.SlotStatusConfirmed, "student-1")}
	_, err = Assign(slotWith("s1", model.SlotStatusAvailable), "student-1", "", sameDay)
	assert.ErrorIs(t, err, ErrSameDayLimit)
}

func TestReassignOverwritesBooking(t *testing.T) {
	slot := bookedSlot("s1", model.SlotStatusPending, "student-1")
	deadline := testNow.Add(24 * time.Hour)
	slot.ProvisionalDeadline = &deadline
	acc := "acc-1"
	slot.AccompanistID = &acc

	next, err := Reassign(slot, "student-2", "", nil)
	require.NoError(t, err)

	assert.Equal(t, model.SlotStatusConfirmed, next.Status)
	assert.Equal(t, "student-2", *next.StudentID)
	assert.Nil(t, next.AccompanistID)
	assert.Nil(t, next.ProvisionalDeadline)
}

func TestReassignRejections(t *testing.T) {
	_, err := Reassign(slotWith("s1", model.SlotStatusAvailable), "student-1", "", nil)
	assert.ErrorIs(t, err, ErrSlotNotActive)

	sameDay := []*model.LessonSlot{bookedSlot("s2", model.SlotStatusPending, "student-2")}
	_, err = Reassign(bookedSlot("s1", model.SlotStatusConfirmed, "student-1"), "student-2", "", sameDay)
	assert.ErrorIs(t, err, ErrSameDayLimit)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name           string
		slot           *model.LessonSlot
		actorID        string
		actorIsTeacher bool
		wantErr        error
	}{
		{
			name:           "teacher cancels any booking",
			slot:           bookedSlot("s1", model.SlotStatusConfirmed, "student-1"),
			actorID:        model.DefaultTeacherID,
			actorIsTeacher: true,
		},
		{
			name:    "student cancels own pending",
			slot:    bookedSlot("s1", model.SlotStatusPending, "student-1"),
			actorID: "student-1",
		},
		{
			name:    "student cancels own confirmed",
			slot:    bookedSlot("s1", model.SlotStatusConfirmed, "student-1"),
			actorID: "student-1",
		},
		{
			name:    "student cannot cancel another's booking",
			slot:    bookedSlot("s1", model.SlotStatusPending, "student-1"),
			actorID: "student-2",
			wantErr: ErrNotSlotOwner,
		},
		{
			name:           "no active booking",
			slot:           slotWith("s1", model.SlotStatusAvailable),
			actorID:        model.DefaultTeacherID,
			actorIsTeacher: true,
			wantErr:        ErrSlotNotActive,
		},
		{
			name:           "blocked slot",
			slot:           slotWith("s1", model.SlotStatusBlocked),
			actorID:        model.DefaultTeacherID,
			actorIsTeacher: true,
			wantErr:        ErrSlotNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Cancel(tt.slot, tt.actorID, tt.actorIsTeacher)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.SlotStatusAvailable, next.Status)
			assert.Nil(t, next.StudentID)
			assert.Nil(t, next.AccompanistID)
			assert.Nil(t, next.ProvisionalDeadline)
		})
	}
}

func TestSetAvailable(t *testing.T) {
	next, err := SetAvailable(slotWith("s1", model.SlotStatusBlocked))
	require.NoError(t, err)
	assert.Equal(t, model.SlotStatusAvailable, next.Status)

	_, err = SetAvailable(slotWith("s1", model.SlotStatusAvailable))
	assert.ErrorIs(t, err, ErrSlotNotActive)

	_, err = SetAvailable(bookedSlot("s1", model.SlotStatusConfirmed, "student-1"))
	assert.ErrorIs(t, err, ErrSlotNotActive)
}

func TestSetBlocked(t *testing.T) {
	next, err := SetBlocked(slotWith("s1", model.SlotStatusAvailable))
	require.NoError(t, err)
	assert.Equal(t, model.SlotStatusBlocked, next.Status)

	_, err = SetBlocked(slotWith("s1", model.SlotStatusBlocked))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = SetBlocked(bookedSlot("s1", model.SlotStatusAvailable, "student-1"))
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestAttachAccompanist(t *testing.T) {
	slot := bookedSlot("s1", model.SlotStatusConfirmed, "student-1")

	next, err := AttachAccompanist(slot, "acc-1")
	require.NoError(t, err)
	require.NotNil(t, next.AccompanistID)
	assert.Equal(t, "acc-1", *next.AccompanistID)
	assert.Nil(t, slot.AccompanistID)

	_, err = AttachAccompanist(next, "acc-2")
	assert.ErrorIs(t, err, ErrAccompanistSet)

	_, err = AttachAccompanist(bookedSlot("s1", model.SlotStatusPending, "student-1"), "acc-1")
	assert.ErrorIs(t, err, ErrSlotNotConfirmed)
}

func TestDetachAccompanist(t *testing.T) {
	slot := bookedSlot("s1", model.SlotStatusConfirmed, "student-1")
	acc := "acc-1"
	slot.AccompanistID = &acc

	next, err := DetachAccompanist(slot, "acc-1")
	require.NoError(t, err)
	assert.Nil(t, next.AccompanistID)

	_, err = DetachAccompanist(slot, "acc-2")
	assert.ErrorIs(t, err, ErrNotSlotAccompanist)

	_, err = DetachAccompanist(bookedSlot("s1", model.SlotStatusConfirmed, "student-1"), "acc-1")
	assert.ErrorIs(t, err, ErrNotSlotAccompanist)

	_, err = DetachAccompanist(bookedSlot("s1", model.SlotStatusPending, "student-1"), "acc-1")
	assert.ErrorIs(t, err, ErrSlotNotConfirmed)
}
