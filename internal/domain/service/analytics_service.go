package service

import (
	"context"
	"habits-cli/internal/domain/entity"
)

// AnalyticsService defines the read-side queries over stored habit records
type AnalyticsService interface {
	// ListHabitNames returns unique habit names in order of first appearance
	ListHabitNames(ctx context.Context) ([]string, error)

	// ListHabitNamesByPeriodicity returns unique names stored with exactly this periodicity
	ListHabitNamesByPeriodicity(ctx context.Context, periodicity entity.Periodicity) ([]string, error)

	// LongestStreak returns the habit with the most stored occurrences
	LongestStreak(ctx context.Context) (*entity.OccurrenceReport, error)

	// LongestStreakFor returns the occurrence count of a single habit
	LongestStreakFor(ctx context.Context, name string) (*entity.OccurrenceReport, error)
}
