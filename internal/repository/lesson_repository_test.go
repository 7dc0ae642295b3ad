package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mwatari/lesson_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDB captures every statement a tx-bound repository issues, standing
// in for the transaction the service passes to WithTx.
type recordingDB struct {
	execs   []string
	queries []string
}

func (db *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.execs = append(db.execs, sql)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (db *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.queries = append(db.queries, sql)
	return nil, pgx.ErrNoRows
}

func (db *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.queries = append(db.queries, sql)
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

func TestLessonRepositoryUpdateRunsOnBoundQuerier(t *testing.T) {
	db := &recordingDB{}
	repo := NewLessonRepository(nil).WithTx(db)

	err := repo.Update(context.Background(), &model.LessonSlot{ID: "2024-05-01-0900"})
	require.NoError(t, err)

	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0], "UPDATE lesson_slots")
}

func TestAvailabilityRepositoryDeleteByIDsRunsOnBoundQuerier(t *testing.T) {
	db := &recordingDB{}
	repo := NewAvailabilityRepository(nil).WithTx(db)

	err := repo.DeleteByIDs(context.Background(), []string{"a1", "a2"})
	require.NoError(t, err)

	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0], "DELETE FROM accompanist_availabilities")
}

func TestDaySettingsRepositoryUpsertRunsOnBoundQuerier(t *testing.T) {
	db := &recordingDB{}
	repo := NewDaySettingsRepository(nil).WithTx(db)

	err := repo.Upsert(context.Background(), model.DefaultDaySettings("2024-05-01"))
	require.NoError(t, err)

	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0], "INSERT INTO day_settings")
}

func TestAvailabilityRepositoryListRunsOnBoundQuerier(t *testing.T) {
	db := &recordingDB{}
	repo := NewAvailabilityRepository(nil).WithTx(db)

	_, _ = repo.ListForAccompanist(context.Background(), "acc-1")

	require.Len(t, db.queries, 1)
	assert.Contains(t, db.queries[0], "FROM accompanist_availabilities")
}
