package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"habits-cli/internal/config"
	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
	infradb "habits-cli/internal/infrastructure/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) repository.HabitRepository {
	t.Helper()

	db, err := infradb.NewSQLiteDB(&config.DatabaseConfig{Path: path, BusyTimeoutMs: 1000})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewHabitRepository(db, path)
}

func TestHabitRepository_InsertThenListAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "habits.db"))

	record := &entity.HabitRecord{Name: "Reading a book", Periodicity: entity.PeriodicityDaily, Duration: "15 days"}
	require.NoError(t, repo.Insert(ctx, record))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, *record, *records[0])
}

func TestHabitRepository_InsertionOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "habits.db"))

	input := []*entity.HabitRecord{
		{Name: "B", Periodicity: entity.PeriodicityWeekly, Duration: "4 weeks"},
		{Name: "A", Periodicity: entity.PeriodicityDaily, Duration: "30 days"},
		{Name: "B", Periodicity: entity.PeriodicityWeekly, Duration: "4 weeks"},
		{Name: "C", Periodicity: "Monthly", Duration: "whenever"},
	}
	for _, record := range input {
		require.NoError(t, repo.Insert(ctx, record))
	}

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(input))
	for i := range input {
		assert.Equal(t, *input[i], *records[i])
	}
}

func TestHabitRepository_ListAllWithoutTable(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "habits.db"))

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHabitRepository_Exists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "habits.db")
	repo := newTestRepository(t, path)

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Insert(ctx, &entity.HabitRecord{Name: "A", Periodicity: entity.PeriodicityDaily, Duration: "1 day"}))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestHabitRepository_PersistsAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "habits.db")

	first := newTestRepository(t, path)
	require.NoError(t, first.Insert(ctx, &entity.HabitRecord{Name: "A", Periodicity: entity.PeriodicityDaily, Duration: "1 day"}))

	second := newTestRepository(t, path)
	records, err := second.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Name)
}

func TestHabitRepository_NotADatabaseFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "habits.db")
	junk := make([]byte, 120)
	for i := range junk {
		junk[i] = byte('x' + i%3)
	}
	require.NoError(t, os.WriteFile(path, junk, 0600))
	repo := newTestRepository(t, path)

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, repository.ErrPersistenceUnavailable)

	err = repo.Insert(ctx, &entity.HabitRecord{Name: "A", Periodicity: entity.PeriodicityDaily, Duration: "1 day"})
	assert.ErrorIs(t, err, repository.ErrPersistenceUnavailable)
}

func TestHabitRepository_PersistenceUnavailable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing-dir", "nested", "habits.db")
	repo := newTestRepository(t, path)

	err := repo.Insert(ctx, &entity.HabitRecord{Name: "A", Periodicity: entity.PeriodicityDaily, Duration: "1 day"})
	assert.ErrorIs(t, err, repository.ErrPersistenceUnavailable)

	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, repository.ErrPersistenceUnavailable)
}
