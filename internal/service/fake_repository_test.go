package service

import (
	"context"
	"fmt"
	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
)

// memoryRepository is an in-memory HabitRepository for service tests
type memoryRepository struct {
	records []*entity.HabitRecord
	created bool
	err     error
}

func newMemoryRepository(records ...*entity.HabitRecord) *memoryRepository {
	return &memoryRepository{records: records, created: len(records) > 0}
}

func (r *memoryRepository) Insert(_ context.Context, record *entity.HabitRecord) error {
	if r.err != nil {
		return r.err
	}
	copied := *record
	r.records = append(r.records, &copied)
	r.created = true
	return nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*entity.HabitRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.HabitRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepository) Exists(_ context.Context) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.created, nil
}

func unavailable() error {
	return fmt.Errorf("failed to open connection: %w", repository.ErrPersistenceUnavailable)
}

func daily(name string) *entity.HabitRecord {
	return &entity.HabitRecord{Name: name, Periodicity: entity.PeriodicityDaily, Duration: "30 days"}
}

func weekly(name string) *entity.HabitRecord {
	return &entity.HabitRecord{Name: name, Periodicity: entity.PeriodicityWeekly, Duration: "4 weeks"}
}
