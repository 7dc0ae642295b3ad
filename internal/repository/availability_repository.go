package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/mwatari/lesson_scheduler/internal/repository/base"
)

type AvailabilityRepository struct {
	base.Repository
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{Repository: base.NewRepository(pool)}
}

// WithTx returns a copy whose statements run inside the given transaction.
func (r *AvailabilityRepository) WithTx(db base.DB) *AvailabilityRepository {
	return &AvailabilityRepository{Repository: r.Repository.WithTx(db)}
}

// Create stores a declaration. Declaring twice for the same slot is a no-op,
// keeping the ledger idempotent per (slot, accompanist) pair.
func (r *AvailabilityRepository) Create(ctx context.Context, a *model.AccompanistAvailability) error {
	query := `
		INSERT INTO accompanist_availabilities (id, slot_id, accompanist_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot_id, accompanist_id) DO NOTHING
	`

	if err := r.Exec(ctx, query, a.ID, a.SlotID, a.AccompanistID); err != nil {
		return fmt.Errorf("create availability: %w", err)
	}

	return nil
}

// Delete removes the declaration for a (slot, accompanist) pair. Removing an
// absent declaration is a no-op.
func (r *AvailabilityRepository) Delete(ctx context.Context, slotID, accompanistID string) error {
	query := `DELETE FROM accompanist_availabilities WHERE slot_id = $1 AND accompanist_id = $2`

	if err := r.Exec(ctx, query, slotID, accompanistID); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	return nil
}

// DeleteByIDs removes a batch of declarations (accompanist conflict sweep).
func (r *AvailabilityRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM accompanist_availabilities WHERE id = ANY($1)`

	if err := r.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("delete availabilities: %w", err)
	}

	return nil
}

func (r *AvailabilityRepository) ListForSlot(ctx context.Context, slotID string) ([]*model.AccompanistAvailability, error) {
	query := `
		SELECT id, slot_id, accompanist_id, created_at
		FROM accompanist_availabilities
		WHERE slot_id = $1
		ORDER BY created_at
	`

	return r.list(ctx, query, slotID)
}

func (r *AvailabilityRepository) ListForAccompanist(ctx context.Context, accompanistID string) ([]*model.AccompanistAvailability, error) {
	query := `
		SELECT id, slot_id, accompanist_id, created_at
		FROM accompanist_availabilities
		WHERE accompanist_id = $1
		ORDER BY created_at
	`

	return r.list(ctx, query, accompanistID)
}

func (r *AvailabilityRepository) list(ctx context.Context, query string, arg any) ([]*model.AccompanistAvailability, error) {
	rows, err := r.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list availabilities: %w", err)
	}
	defer rows.Close()

	var avails []*model.AccompanistAvailability
	for rows.Next() {
		var a model.AccompanistAvailability
		if err := rows.Scan(&a.ID, &a.SlotID, &a.AccompanistID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		avails = append(avails, &a)
	}

	return avails, rows.Err()
}
