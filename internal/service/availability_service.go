package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mwatari/lesson_scheduler/internal/booking"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository"
	"go.uber.org/zap"
)

// AvailabilityService is the accompanist ledger: declarations per slot plus
// the continuity recommendation derived from the day's timeline.
type AvailabilityService struct {
	settingsRepo *repository.DaySettingsRepository
	lessonRepo   *repository.LessonRepository
	availRepo    *repository.AvailabilityRepository
	timetables   *TimetableService
	logger       *zap.Logger
}

func NewAvailabilityService(
	settingsRepo *repository.DaySettingsRepository,
	lessonRepo *repository.LessonRepository,
	availRepo *repository.AvailabilityRepository,
	timetables *TimetableService,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		settingsRepo: settingsRepo,
		lessonRepo:   lessonRepo,
		availRepo:    availRepo,
		timetables:   timetables,
		logger:       logger,
	}
}

// Declare records "this accompanist can play for this slot". Only available
// slots accept declarations; declaring twice is a no-op.
func (s *AvailabilityService) Declare(ctx context.Context, slotID, accompanistID string) (*model.AccompanistAvailability, error) {
	slot, err := s.lessonRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, booking.ErrSlotNotFound
	}
	if slot.Status != model.SlotStatusAvailable {
		return nil, booking.ErrSlotNotAvailable
	}

	a := &model.AccompanistAvailability{
		ID:            uuid.NewString(),
		SlotID:        slotID,
		AccompanistID: accompanistID,
	}
	if err := s.availRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("Availability declared",
		zap.String("slot_id", slotID),
		zap.String("accompanist_id", accompanistID),
	)

	return a, nil
}

// Withdraw removes a declaration; absent declarations are a no-op.
func (s *AvailabilityService) Withdraw(ctx context.Context, slotID, accompanistID string) error {
	if err := s.availRepo.Delete(ctx, slotID, accompanistID); err != nil {
		return err
	}

	s.logger.Info("Availability withdrawn",
		zap.String("slot_id", slotID),
		zap.String("accompanist_id", accompanistID),
	)

	return nil
}

func (s *AvailabilityService) ListForSlot(ctx context.Context, slotID string) ([]*model.AccompanistAvailability, error) {
	return s.availRepo.ListForSlot(ctx, slotID)
}

func (s *AvailabilityService) ListForAccompanist(ctx context.Context, accompanistID string) ([]*model.AccompanistAvailability, error) {
	return s.availRepo.ListForAccompanist(ctx, accompanistID)
}

// Recommended returns the accompanists who both declared availability for
// the slot and accompany the confirmed lesson directly before or after it,
// so they could continue consecutively.
func (s *AvailabilityService) Recommended(ctx context.Context, slotID string) ([]string, error) {
	slot, err := s.lessonRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, booking.ErrSlotNotFound
	}

	items, _, err := s.timetables.GetDayTimetable(ctx, slot.Date)
	if err != nil {
		return nil, err
	}
	adjacent := booking.AdjacentConfirmedAccompanists(items, slotID)
	if len(adjacent) == 0 {
		return nil, nil
	}

	declared, err := s.availRepo.ListForSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}
	declaredIDs := make(map[string]bool, len(declared))
	for _, a := range declared {
		declaredIDs[a.AccompanistID] = true
	}

	var recommended []string
	for _, id := range adjacent {
		if declaredIDs[id] {
			recommended = append(recommended, id)
		}
	}
	return recommended, nil
}
