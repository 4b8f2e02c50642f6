package service

import (
	"context"
	"habits-cli/internal/domain/entity"
)

// HabitService defines the interface for habit definition and progress
type HabitService interface {
	// DefineHabit validates and stores a new habit record
	DefineHabit(ctx context.Context, name string, periodicity entity.Periodicity, duration string) (*entity.HabitRecord, error)

	// ListHabits retrieves every stored habit record
	ListHabits(ctx context.Context) ([]*entity.HabitRecord, error)

	// SeedIfAbsent stores the predefined habits when the store does not exist yet.
	// It returns true if seeding happened.
	SeedIfAbsent(ctx context.Context) (bool, error)
}
