package service

import (
	"context"
	"fmt"
	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
	"habits-cli/internal/domain/service"
	"strings"

	"go.uber.org/zap"
)

type analyticsService struct {
	habitRepo repository.HabitRepository
	logger    *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(habitRepo repository.HabitRepository, logger *zap.Logger) service.AnalyticsService {
	return &analyticsService{
		habitRepo: habitRepo,
		logger:    logger,
	}
}

func (s *analyticsService) records(ctx context.Context) ([]*entity.HabitRecord, error) {
	records, err := s.habitRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	return records, nil
}

func (s *analyticsService) ListHabitNames(ctx context.Context) ([]string, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	names := DistinctNames(records)
	s.logger.Debug("listed habit names", zap.Int("records", len(records)), zap.Int("names", len(names)))

	return names, nil
}

func (s *analyticsService) ListHabitNamesByPeriodicity(ctx context.Context, periodicity entity.Periodicity) ([]string, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	names := NamesByPeriodicity(records, periodicity)
	s.logger.Debug("listed habit names by periodicity",
		zap.String("periodicity", string(periodicity)),
		zap.Int("names", len(names)),
	)

	return names, nil
}

func (s *analyticsService) LongestStreak(ctx context.Context) (*entity.OccurrenceReport, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	report := LongestOccurrence(records)
	if !report.Found {
		s.logger.Info("longest streak requested on empty store")
	}

	return report, nil
}

func (s *analyticsService) LongestStreakFor(ctx context.Context, name string) (*entity.OccurrenceReport, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	// names are stored trimmed, see DefineHabit
	return LongestOccurrenceFor(records, strings.TrimSpace(name)), nil
}
