package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository/base"
)

type DaySettingsRepository struct {
	base.Repository
}

func NewDaySettingsRepository(pool *pgxpool.Pool) *DaySettingsRepository {
	return &DaySettingsRepository{Repository: base.NewRepository(pool)}
}

// WithTx returns a copy whose statements run inside the given transaction.
func (r *DaySettingsRepository) WithTx(db base.DB) *DaySettingsRepository {
	return &DaySettingsRepository{Repository: r.Repository.WithTx(db)}
}

// GetByDate returns the stored settings for a date, or nil when the date has
// no record (callers fall back to model.DefaultDaySettings).
func (r *DaySettingsRepository) GetByDate(ctx context.Context, date string) (*model.DaySettings, error) {
	query := `
		SELECT date, start_time, end_time_mode, lunch_break_open, default_room, provisional_hours, is_lesson_day
		FROM day_settings
		WHERE date = $1
	`

	var s model.DaySettings
	err := r.QueryRow(ctx, query, date).Scan(
		&s.Date,
		&s.StartTime,
		&s.EndTimeMode,
		&s.LunchBreakOpen,
		&s.DefaultRoom,
		&s.ProvisionalHours,
		&s.IsLessonDay,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get day settings: %w", err)
	}

	return &s, nil
}

func (r *DaySettingsRepository) Upsert(ctx context.Context, s *model.DaySettings) error {
	query := `
		INSERT INTO day_settings (date, start_time, end_time_mode, lunch_break_open, default_room, provisional_hours, is_lesson_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time_mode = EXCLUDED.end_time_mode,
			lunch_break_open = EXCLUDED.lunch_break_open,
			default_room = EXCLUDED.default_room,
			provisional_hours = EXCLUDED.provisional_hours,
			is_lesson_day = EXCLUDED.is_lesson_day
	`

	_, err := r.Pool().Exec(ctx, query,
		s.Date,
		s.StartTime,
		s.EndTimeMode,
		s.LunchBreakOpen,
		s.DefaultRoom,
		s.ProvisionalHours,
		s.IsLessonDay,
	)
	if err != nil {
		return fmt.Errorf("upsert day settings: %w", err)
	}

	return nil
}
