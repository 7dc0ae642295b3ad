package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository/base"
)

type WeeklyMasterRepository struct {
	base.Repository
}

func NewWeeklyMasterRepository(pool *pgxpool.Pool) *WeeklyMasterRepository {
	return &WeeklyMasterRepository{Repository: base.NewRepository(pool)}
}

func (r *WeeklyMasterRepository) List(ctx context.Context) ([]*model.WeeklyMaster, error) {
	query := `
		SELECT day_of_week, slot_index, student_id
		FROM weekly_masters
		ORDER BY day_of_week, slot_index
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weekly masters: %w", err)
	}
	defer rows.Close()

	return scanMasters(rows)
}

func (r *WeeklyMasterRepository) ListByWeekday(ctx context.Context, dayOfWeek int) ([]*model.WeeklyMaster, error) {
	query := `
		SELECT day_of_week, slot_index, student_id
		FROM weekly_masters
		WHERE day_of_week = $1
		ORDER BY slot_index
	`

	rows, err := r.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("list weekly masters by weekday: %w", err)
	}
	defer rows.Close()

	return scanMasters(rows)
}

func (r *WeeklyMasterRepository) Upsert(ctx context.Context, m *model.WeeklyMaster) error {
	query := `
		INSERT INTO weekly_masters (day_of_week, slot_index, student_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (day_of_week, slot_index) DO UPDATE SET student_id = EXCLUDED.student_id
	`

	if err := r.Exec(ctx, query, m.DayOfWeek, m.SlotIndex, m.StudentID); err != nil {
		return fmt.Errorf("upsert weekly master: %w", err)
	}

	return nil
}

func (r *WeeklyMasterRepository) Delete(ctx context.Context, dayOfWeek, slotIndex int) error {
	query := `DELETE FROM weekly_masters WHERE day_of_week = $1 AND slot_index = $2`

	if err := r.Exec(ctx, query, dayOfWeek, slotIndex); err != nil {
		return fmt.Errorf("delete weekly master: %w", err)
	}

	return nil
}

// ReplaceAll swaps the whole template in one transaction, the way the
// weekly-master editor saves.
func (r *WeeklyMasterRepository) ReplaceAll(ctx context.Context, masters []*model.WeeklyMaster) error {
	tx, err := r.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM weekly_masters`); err != nil {
		return fmt.Errorf("clear weekly masters: %w", err)
	}

	for _, m := range masters {
		_, err := tx.Exec(ctx,
			`INSERT INTO weekly_masters (day_of_week, slot_index, student_id) VALUES ($1, $2, $3)`,
			m.DayOfWeek, m.SlotIndex, m.StudentID,
		)
		if err != nil {
			return fmt.Errorf("insert weekly master: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func scanMasters(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]*model.WeeklyMaster, error) {
	var masters []*model.WeeklyMaster
	for rows.Next() {
		var m model.WeeklyMaster
		if err := rows.Scan(&m.DayOfWeek, &m.SlotIndex, &m.StudentID); err != nil {
			return nil, fmt.Errorf("scan weekly master: %w", err)
		}
		masters = append(masters, &m)
	}
	return masters, rows.Err()
}
