package service

import (
	"context"
	"fmt"
	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
	"habits-cli/internal/domain/service"
	"habits-cli/pkg/validation"
	"strings"

	"go.uber.org/zap"
)

// SeedDuration is the tracking duration of every predefined habit
const SeedDuration = "30 days"

// PredefinedHabits are offered when defining a habit and stored on first run
var PredefinedHabits = []string{
	"Stretching Session per day",
	"Drinking 2 liters of water per day",
	"Taking 10,000 steps per day",
	"Engaging in 1 hour physical activity per day",
	"Spending 15 minutes in meditation per day",
}

type habitService struct {
	habitRepo repository.HabitRepository
	logger    *zap.Logger
}

// NewHabitService creates a new habit service
func NewHabitService(habitRepo repository.HabitRepository, logger *zap.Logger) service.HabitService {
	return &habitService{
		habitRepo: habitRepo,
		logger:    logger,
	}
}

func (s *habitService) DefineHabit(ctx context.Context, name string, periodicity entity.Periodicity, duration string) (*entity.HabitRecord, error) {
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateDuration(duration); err != nil {
		return nil, err
	}

	record := &entity.HabitRecord{
		Name:        strings.TrimSpace(name),
		Periodicity: periodicity,
		Duration:    strings.TrimSpace(duration),
	}

	if err := s.habitRepo.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to define habit: %w", err)
	}

	s.logger.Info("habit defined",
		zap.String("name", record.Name),
		zap.String("periodicity", string(record.Periodicity)),
		zap.String("duration", record.Duration),
	)

	return record, nil
}

func (s *habitService) ListHabits(ctx context.Context) ([]*entity.HabitRecord, error) {
	records, err := s.habitRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	return records, nil
}

func (s *habitService) SeedIfAbsent(ctx context.Context) (bool, error) {
	exists, err := s.habitRepo.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check store: %w", err)
	}
	if exists {
		return false, nil
	}

	for _, name := range PredefinedHabits {
		record := &entity.HabitRecord{
			Name:        name,
			Periodicity: entity.PeriodicityDaily,
			Duration:    SeedDuration,
		}
		if err := s.habitRepo.Insert(ctx, record); err != nil {
			return false, fmt.Errorf("failed to seed habit %q: %w", name, err)
		}
	}

	s.logger.Info("store seeded with predefined habits", zap.Int("count", len(PredefinedHabits)))

	return true, nil
}
