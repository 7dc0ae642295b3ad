package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/booking"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository"
	"github.com/mwatari/lesson_scheduler/internal/timetable"
	"go.uber.org/zap"
)

// LessonService applies the booking state machine to persisted slots. The
// transition rules themselves live in the booking package; this layer loads
// the snapshot, runs the transition and stores the result.
type LessonService struct {
	pool         *pgxpool.Pool
	settingsRepo *repository.DaySettingsRepository
	lessonRepo   *repository.LessonRepository
	availRepo    *repository.AvailabilityRepository
	logger       *zap.Logger
}

func NewLessonService(
	pool *pgxpool.Pool,
	settingsRepo *repository.DaySettingsRepository,
	lessonRepo *repository.LessonRepository,
	availRepo *repository.AvailabilityRepository,
	logger *zap.Logger,
) *LessonService {
	return &LessonService{
		pool:         pool,
		settingsRepo: settingsRepo,
		lessonRepo:   lessonRepo,
		availRepo:    availRepo,
		logger:       logger,
	}
}

func (s *LessonService) getSlot(ctx context.Context, slotID string) (*model.LessonSlot, error) {
	slot, err := s.lessonRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, booking.ErrSlotNotFound
	}
	return slot, nil
}

// Book places a student's provisional hold on a slot. Confirming an
// accompanist at booking time triggers the availability conflict sweep.
func (s *LessonService) Book(ctx context.Context, slotID, studentID, accompanistID string) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	sameDay, err := s.lessonRepo.GetByDate(ctx, slot.Date)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByDate(ctx, slot.Date)
	if err != nil {
		return nil, err
	}
	hold := model.DefaultProvisionalHours
	if settings != nil {
		hold = settings.ProvisionalHours
	}

	next, err := booking.Book(slot, studentID, accompanistID, sameDay, hold, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.commitTransition(ctx, next, sameDay); err != nil {
		return nil, err
	}

	s.logger.Info("Slot booked",
		zap.String("slot_id", next.ID),
		zap.String("date", next.Date),
		zap.String("student_id", studentID),
		zap.String("accompanist_id", accompanistID),
		zap.Timep("provisional_deadline", next.ProvisionalDeadline),
	)

	return next, nil
}

// Approve confirms a pending booking. Teacher action.
func (s *LessonService) Approve(ctx context.Context, slotID string) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	next, err := booking.Approve(slot)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Booking approved",
		zap.String("slot_id", next.ID),
		zap.String("date", next.Date),
	)

	return next, nil
}

// Assign books a student directly into an available slot as confirmed.
// Teacher action.
func (s *LessonService) Assign(ctx context.Context, slotID, studentID, accompanistID string) (*model.LessonSlot, error) {
	return s.assign(ctx, slotID, studentID, accompanistID, false)
}

// Reassign overwrites the booking of a pending or confirmed slot. Teacher
// action.
func (s *LessonService) Reassign(ctx context.Context, slotID, studentID, accompanistID string) (*model.LessonSlot, error) {
	return s.assign(ctx, slotID, studentID, accompanistID, true)
}

func (s *LessonService) assign(ctx context.Context, slotID, studentID, accompanistID string, overwrite bool) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	sameDay, err := s.lessonRepo.GetByDate(ctx, slot.Date)
	if err != nil {
		return nil, err
	}

	var next *model.LessonSlot
	if overwrite {
		next, err = booking.Reassign(slot, studentID, accompanistID, sameDay)
	} else {
		next, err = booking.Assign(slot, studentID, accompanistID, sameDay)
	}
	if err != nil {
		return nil, err
	}

	if err := s.commitTransition(ctx, next, sameDay); err != nil {
		return nil, err
	}

	s.logger.Info("Slot assigned",
		zap.String("slot_id", next.ID),
		zap.String("date", next.Date),
		zap.String("student_id", studentID),
		zap.String("accompanist_id", accompanistID),
		zap.Bool("overwrite", overwrite),
	)

	return next, nil
}

// Cancel releases a booking back to available. Teachers may cancel any
// booking, students only their own.
func (s *LessonService) Cancel(ctx context.Context, slotID, actorID string, actorIsTeacher bool) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	next, err := booking.Cancel(slot, actorID, actorIsTeacher)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Booking canceled",
		zap.String("slot_id", next.ID),
		zap.String("date", next.Date),
		zap.String("actor_id", actorID),
		zap.Bool("by_teacher", actorIsTeacher),
	)

	return next, nil
}

// OpenSlot publishes the position at (date, startTime) as bookable. A slot
// that only existed in the computed timeline is persisted on first open.
// Teacher action.
func (s *LessonService) OpenSlot(ctx context.Context, date, startTime string) (*model.LessonSlot, error) {
	slot, err := s.lessonRepo.GetByID(ctx, timetable.SlotID(date, startTime))
	if err != nil {
		return nil, err
	}

	if slot != nil {
		next, err := booking.SetAvailable(slot)
		if err != nil {
			return nil, err
		}
		if err := s.lessonRepo.Update(ctx, next); err != nil {
			return nil, err
		}
		s.logger.Info("Slot opened", zap.String("slot_id", next.ID), zap.String("date", date))
		return next, nil
	}

	// First touch of a computed-only position: materialize it.
	settings, err := s.settingsRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if settings == nil || !settings.IsLessonDay {
		return nil, booking.ErrSlotNotFound
	}

	existing, err := s.lessonRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for _, item := range timetable.Generate(date, settings, existing) {
		if item.Type != timetable.ItemSlot || item.StartTime != startTime {
			continue
		}
		slot = item.Slot
		slot.Status = model.SlotStatusAvailable
		if err := s.lessonRepo.Create(ctx, slot); err != nil {
			return nil, err
		}
		s.logger.Info("Slot materialized and opened", zap.String("slot_id", slot.ID), zap.String("date", date))
		return slot, nil
	}

	return nil, booking.ErrSlotNotFound
}

// BlockSlot withdraws an available slot from booking. Teacher action.
func (s *LessonService) BlockSlot(ctx context.Context, slotID string) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	next, err := booking.SetBlocked(slot)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Slot blocked", zap.String("slot_id", next.ID), zap.String("date", next.Date))

	return next, nil
}

// AttachAccompanist joins an accompanist to a confirmed lesson.
func (s *LessonService) AttachAccompanist(ctx context.Context, slotID, accompanistID string) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	next, err := booking.AttachAccompanist(slot, accompanistID)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Accompanist attached",
		zap.String("slot_id", next.ID),
		zap.String("accompanist_id", accompanistID),
	)

	return next, nil
}

// DetachAccompanist removes the assigned accompanist from a confirmed
// lesson.
func (s *LessonService) DetachAccompanist(ctx context.Context, slotID, accompanistID string) (*model.LessonSlot, error) {
	slot, err := s.getSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	next, err := booking.DetachAccompanist(slot, accompanistID)
	if err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Info("Accompanist detached",
		zap.String("slot_id", next.ID),
		zap.String("accompanist_id", accompanistID),
	)

	return next, nil
}

// ExpireProvisional runs the provisional-hold sweep. Idempotent; invoked by
// the background scheduler and once at startup.
func (s *LessonService) ExpireProvisional(ctx context.Context) (int64, error) {
	released, err := s.lessonRepo.ExpirePending(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if released > 0 {
		s.logger.Info("Provisional holds expired", zap.Int64("released", released))
	}

	return released, nil
}

// commitTransition stores a transition result and, when the slot carries an
// accompanist, deletes that accompanist's availability declarations for
// other slots at the same date and start time. Both writes share one
// transaction.
func (s *LessonService) commitTransition(ctx context.Context, next *model.LessonSlot, sameDay []*model.LessonSlot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lessonRepo := s.lessonRepo.WithTx(tx)
	availRepo := s.availRepo.WithTx(tx)

	if err := lessonRepo.Update(ctx, next); err != nil {
		return err
	}

	if next.AccompanistID != nil {
		avails, err := availRepo.ListForAccompanist(ctx, *next.AccompanistID)
		if err != nil {
			return err
		}
		conflicts := booking.ConflictingAvailabilities(next, sameDay, avails)
		if len(conflicts) > 0 {
			ids := make([]string, len(conflicts))
			for i, c := range conflicts {
				ids[i] = c.ID
			}
			if err := availRepo.DeleteByIDs(ctx, ids); err != nil {
				return err
			}
			s.logger.Info("Conflicting availabilities removed",
				zap.String("slot_id", next.ID),
				zap.String("accompanist_id", *next.AccompanistID),
				zap.Int("removed", len(ids)),
			)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
