package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository"
	"github.com/mwatari/lesson_scheduler/internal/timetable"
	"go.uber.org/zap"
)

type TimetableService struct {
	pool         *pgxpool.Pool
	settingsRepo *repository.DaySettingsRepository
	lessonRepo   *repository.LessonRepository
	weeklyRepo   *repository.WeeklyMasterRepository
	logger       *zap.Logger
}

func NewTimetableService(
	pool *pgxpool.Pool,
	settingsRepo *repository.DaySettingsRepository,
	lessonRepo *repository.LessonRepository,
	weeklyRepo *repository.WeeklyMasterRepository,
	logger *zap.Logger,
) *TimetableService {
	return &TimetableService{
		pool:         pool,
		settingsRepo: settingsRepo,
		lessonRepo:   lessonRepo,
		weeklyRepo:   weeklyRepo,
		logger:       logger,
	}
}

// GetDaySettings resolves a date's settings, falling back to the defaults
// (not a lesson day) when nothing is stored.
func (s *TimetableService) GetDaySettings(ctx context.Context, date string) (*model.DaySettings, error) {
	settings, err := s.settingsRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = model.DefaultDaySettings(date)
	}
	return settings, nil
}

func (s *TimetableService) UpsertDaySettings(ctx context.Context, settings *model.DaySettings) error {
	if settings.StartTime == "" {
		settings.StartTime = model.DefaultStartTime
	}
	if err := validateDaySettings(settings); err != nil {
		return err
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return err
	}

	s.logger.Info("Day settings updated",
		zap.String("date", settings.Date),
		zap.String("end_time_mode", string(settings.EndTimeMode)),
		zap.Bool("lunch_break_open", settings.LunchBreakOpen),
		zap.Bool("is_lesson_day", settings.IsLessonDay),
	)

	return nil
}

// GetDayTimetable returns the ordered timeline for a date over the persisted
// slots. A date that is not a lesson day has no items regardless of its
// other settings.
func (s *TimetableService) GetDayTimetable(ctx context.Context, date string) ([]timetable.TimeItem, *model.DaySettings, error) {
	settings, err := s.GetDaySettings(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	if !settings.IsLessonDay {
		return nil, settings, nil
	}

	slots, err := s.lessonRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}

	return timetable.Generate(date, settings, slots), settings, nil
}

func (s *TimetableService) GetDaySummary(ctx context.Context, date string) (timetable.Summary, error) {
	items, _, err := s.GetDayTimetable(ctx, date)
	if err != nil {
		return timetable.Summary{}, err
	}
	return timetable.DaySummary(items), nil
}

// LessonSlotList exposes the canonical slot numbering for the weekly-master
// editor.
func (s *TimetableService) LessonSlotList(settings *model.DaySettings) []timetable.SlotListRow {
	if settings == nil {
		settings = timetable.ReferenceDaySettings()
	}
	return timetable.LessonSlotList(settings)
}

// GenerateDay marks the date a lesson day and materializes its generated
// slots. Positions covered by the weekly master are created confirmed with
// the template student; the rest start available. Already-persisted slots
// are left untouched.
func (s *TimetableService) GenerateDay(ctx context.Context, date string, endTimeMode model.EndTimeMode) ([]timetable.TimeItem, error) {
	dayOfWeek, err := weekdayOf(date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	settings, err := s.GetDaySettings(ctx, date)
	if err != nil {
		return nil, err
	}
	settings.IsLessonDay = true
	if endTimeMode != "" {
		settings.EndTimeMode = endTimeMode
	}
	if err := validateDaySettings(settings); err != nil {
		return nil, err
	}

	masters, err := s.weeklyRepo.ListByWeekday(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}

	existing, err := s.lessonRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	existingIDs := make(map[string]bool, len(existing))
	for _, slot := range existing {
		existingIDs[slot.ID] = true
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	settingsRepo := s.settingsRepo.WithTx(tx)
	lessonRepo := s.lessonRepo.WithTx(tx)

	if err := settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	// Persisted records are reused by position, so a record with a foreign ID
	// at a generated start time is skipped via existingIDs, not re-inserted.
	items := timetable.Generate(date, settings, existing)
	created := 0
	for _, item := range items {
		if item.Type != timetable.ItemSlot || item.Slot == nil || existingIDs[item.Slot.ID] {
			continue
		}

		slot := item.Slot
		// Template indices are 0-based; ordinals 1-based.
		if studentID := timetable.ResolveWeeklyMaster(masters, dayOfWeek, item.Ordinal-1); studentID != "" {
			slot.Status = model.SlotStatusConfirmed
			slot.StudentID = &studentID
		} else {
			slot.Status = model.SlotStatusAvailable
		}

		if err := lessonRepo.Create(ctx, slot); err != nil {
			return nil, err
		}
		created++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Day slots generated",
		zap.String("date", date),
		zap.Int("created", created),
		zap.String("end_time_mode", string(settings.EndTimeMode)),
	)

	slots, err := s.lessonRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return timetable.Generate(date, settings, slots), nil
}

func (s *TimetableService) ListWeeklyMasters(ctx context.Context) ([]*model.WeeklyMaster, error) {
	return s.weeklyRepo.List(ctx)
}

// ReplaceWeeklyMasters swaps the whole template. Slot indices are validated
// against the canonical reference day so an entry can never point past the
// last lesson slot.
func (s *TimetableService) ReplaceWeeklyMasters(ctx context.Context, masters []*model.WeeklyMaster) error {
	maxIndex := 0
	for _, row := range timetable.LessonSlotList(timetable.ReferenceDaySettings()) {
		if row.SlotIndex > maxIndex {
			maxIndex = row.SlotIndex
		}
	}

	for _, m := range masters {
		if m.DayOfWeek < 0 || m.DayOfWeek > 6 {
			return fmt.Errorf("%w: day_of_week %d out of range", ErrInvalidInput, m.DayOfWeek)
		}
		if m.SlotIndex < 0 || m.SlotIndex > maxIndex {
			return fmt.Errorf("%w: slot_index %d out of range", ErrInvalidInput, m.SlotIndex)
		}
		if m.StudentID == "" {
			return fmt.Errorf("%w: student_id is required", ErrInvalidInput)
		}
	}

	if err := s.weeklyRepo.ReplaceAll(ctx, masters); err != nil {
		return err
	}

	s.logger.Info("Weekly masters replaced", zap.Int("entries", len(masters)))

	return nil
}

// validateDaySettings rejects values the schema's CHECK constraints would
// bounce, so bad input fails before any write.
func validateDaySettings(s *model.DaySettings) error {
	if s.EndTimeMode != model.EndTimeEarly && s.EndTimeMode != model.EndTimeLate {
		return fmt.Errorf("%w: end_time_mode must be %q or %q", ErrInvalidInput, model.EndTimeEarly, model.EndTimeLate)
	}
	if s.ProvisionalHours != 24 && s.ProvisionalHours != 48 {
		return fmt.Errorf("%w: provisional_hours must be 24 or 48", ErrInvalidInput)
	}
	if timetable.TimeToMinutes(s.StartTime) < 0 {
		return fmt.Errorf("%w: start_time must be HH:MM", ErrInvalidInput)
	}
	return nil
}

// weekdayOf returns the 0=Sunday weekday of a YYYY-MM-DD date.
func weekdayOf(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}
