package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository/base"
)

type LessonRepository struct {
	base.Repository
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{Repository: base.NewRepository(pool)}
}

// WithTx returns a copy whose statements run inside the given transaction.
func (r *LessonRepository) WithTx(db base.DB) *LessonRepository {
	return &LessonRepository{Repository: r.Repository.WithTx(db)}
}

const lessonColumns = `id, date, start_time, end_time, room_name, teacher_id, student_id, accompanist_id, status, provisional_deadline, created_at`

func scanLesson(row interface{ Scan(...any) error }) (*model.LessonSlot, error) {
	var s model.LessonSlot
	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.RoomName,
		&s.TeacherID,
		&s.StudentID,
		&s.AccompanistID,
		&s.Status,
		&s.ProvisionalDeadline,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *LessonRepository) Create(ctx context.Context, slot *model.LessonSlot) error {
	query := `
		INSERT INTO lesson_slots (id, date, start_time, end_time, room_name, teacher_id, student_id, accompanist_id, status, provisional_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.QueryRow(ctx, query,
		slot.ID,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.RoomName,
		slot.TeacherID,
		slot.StudentID,
		slot.AccompanistID,
		slot.Status,
		slot.ProvisionalDeadline,
	).Scan(&slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("create lesson slot: %w", err)
	}

	return nil
}

// GetByID returns the slot or nil when no record exists.
func (r *LessonRepository) GetByID(ctx context.Context, id string) (*model.LessonSlot, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_slots WHERE id = $1`

	slot, err := scanLesson(r.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson slot by id: %w", err)
	}

	return slot, nil
}

func (r *LessonRepository) GetByDate(ctx context.Context, date string) ([]*model.LessonSlot, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_slots WHERE date = $1 ORDER BY start_time`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get lesson slots by date: %w", err)
	}
	defer rows.Close()

	var slots []*model.LessonSlot
	for rows.Next() {
		slot, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson slot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

func (r *LessonRepository) GetByDateRange(ctx context.Context, from, to string) ([]*model.LessonSlot, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_slots WHERE date >= $1 AND date <= $2 ORDER BY date, start_time`

	rows, err := r.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get lesson slots by range: %w", err)
	}
	defer rows.Close()

	var slots []*model.LessonSlot
	for rows.Next() {
		slot, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson slot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// Update writes the mutable fields of a slot produced by a state transition.
func (r *LessonRepository) Update(ctx context.Context, slot *model.LessonSlot) error {
	query := `
		UPDATE lesson_slots
		SET room_name = $1, student_id = $2, accompanist_id = $3, status = $4, provisional_deadline = $5
		WHERE id = $6
	`

	affected, err := r.ExecAffected(ctx, query,
		slot.RoomName,
		slot.StudentID,
		slot.AccompanistID,
		slot.Status,
		slot.ProvisionalDeadline,
		slot.ID,
	)
	if err != nil {
		return fmt.Errorf("update lesson slot: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lesson slot not found")
	}

	return nil
}

// ExpirePending releases every pending slot whose provisional deadline has
// passed and returns how many were released. Safe to re-run; it only touches
// already-expired rows.
func (r *LessonRepository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE lesson_slots
		SET status = 'available', student_id = NULL, accompanist_id = NULL, provisional_deadline = NULL
		WHERE status = 'pending' AND provisional_deadline < $1
	`

	affected, err := r.ExecAffected(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("expire pending slots: %w", err)
	}

	return affected, nil
}
