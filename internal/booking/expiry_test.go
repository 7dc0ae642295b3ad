package booking

import (
	"testing"
	"time"

	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingSlot(id string, studentID string, deadline time.Time) *model.LessonSlot {
	s := bookedSlot(id, model.SlotStatusPending, studentID)
	s.ProvisionalDeadline = &deadline
	return s
}

func TestExpireProvisional(t *testing.T) {
	now := testNow
	lapsed := pendingSlot("s1", "student-1", now.Add(-time.Minute))
	held := pendingSlot("s2", "student-2", now.Add(time.Hour))
	confirmed := bookedSlot("s3", model.SlotStatusConfirmed, "student-3")

	next, expired := ExpireProvisional([]*model.LessonSlot{lapsed, held, confirmed}, now)

	require.Len(t, expired, 1)
	assert.Equal(t, "s1", expired[0].ID)
	assert.Equal(t, model.SlotStatusAvailable, expired[0].Status)
	assert.Nil(t, expired[0].StudentID)
	assert.Nil(t, expired[0].ProvisionalDeadline)

	require.Len(t, next, 3)
	assert.Equal(t, model.SlotStatusAvailable, next[0].Status)
	assert.Same(t, held, next[1])
	assert.Same(t, confirmed, next[2])

	// The snapshot is untouched.
	assert.Equal(t, model.SlotStatusPending, lapsed.Status)
}

func TestExpireProvisionalExactDeadlineHolds(t *testing.T) {
	slot := pendingSlot("s1", "student-1", testNow)

	_, expired := ExpireProvisional([]*model.LessonSlot{slot}, testNow)
	assert.Empty(t, expired)
}

func TestExpireProvisionalIdempotent(t *testing.T) {
	now := testNow
	slots := []*model.LessonSlot{
		pendingSlot("s1", "student-1", now.Add(-time.Hour)),
		pendingSlot("s2", "student-2", now.Add(time.Hour)),
	}

	first, expired := ExpireProvisional(slots, now)
	require.Len(t, expired, 1)

	second, expired := ExpireProvisional(first, now)
	assert.Empty(t, expired)
	assert.Equal(t, first, second)
}

func TestExpireProvisionalNilDeadline(t *testing.T) {
	slot := bookedSlot("s1", model.SlotStatusPending, "student-1")

	_, expired := ExpireProvisional([]*model.LessonSlot{slot}, testNow)
	assert.Empty(t, expired)
}
