package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"habits-cli/internal/domain/entity"
	"habits-cli/internal/domain/repository"
	"habits-cli/internal/domain/service"
	habitsvc "habits-cli/internal/service"
	"habits-cli/pkg/validation"

	"go.uber.org/zap"
)

// Menu entries
const (
	MenuDefineHabit    = "Define Habit"
	MenuCheckProgress  = "Check Progress"
	MenuHabitAnalytics = "Habit Analytics"
	MenuExit           = "Exit"

	AnalyticsListAll       = "List all currently tracked habits"
	AnalyticsByPeriodicity = "List all habits with the same periodicity"
	AnalyticsLongest       = "Longest run streak of all defined habits"
	AnalyticsLongestFor    = "Longest streak for a given habit"
	AnalyticsBack          = "Back to Main Menu"

	CustomHabit = "Create your own habit"
)

var mainMenu = []string{MenuDefineHabit, MenuCheckProgress, MenuHabitAnalytics, MenuExit}

var analyticsMenu = []string{
	AnalyticsListAll,
	AnalyticsByPeriodicity,
	AnalyticsLongest,
	AnalyticsLongestFor,
	AnalyticsBack,
}

// Shell is the interactive menu loop
type Shell struct {
	habitService     service.HabitService
	analyticsService service.AnalyticsService
	prompter         Prompter
	out              io.Writer
	logger           *zap.Logger
}

// NewShell creates a new interactive shell
func NewShell(
	habitService service.HabitService,
	analyticsService service.AnalyticsService,
	prompter Prompter,
	out io.Writer,
	logger *zap.Logger,
) *Shell {
	return &Shell{
		habitService:     habitService,
		analyticsService: analyticsService,
		prompter:         prompter,
		out:              out,
		logger:           logger,
	}
}

// Run shows the main menu until the user exits, aborts a prompt or ctx is cancelled
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		choice, err := s.prompter.Select(ctx, "Welcome to the Habit Tracker. What would you like to do?", mainMenu)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		s.logger.Debug("main menu choice", zap.String("choice", choice))

		switch choice {
		case MenuDefineHabit:
			err = s.defineHabit(ctx)
		case MenuCheckProgress:
			err = s.checkProgress(ctx)
		case MenuHabitAnalytics:
			err = s.habitAnalytics(ctx)
		case MenuExit:
			return nil
		}

		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			if !s.report(err) {
				return err
			}
		}
	}
}

// report prints recoverable errors and tells whether the loop may continue
func (s *Shell) report(err error) bool {
	switch {
	case errors.Is(err, repository.ErrPersistenceUnavailable):
		s.logger.Warn("persistence unavailable", zap.Error(err))
		renderNotice(s.out, "Persistence unavailable: %v", err)
		return true
	case errors.Is(err, validation.ErrInvalidInput):
		renderNotice(s.out, "%v", err)
		return true
	default:
		s.logger.Error("shell action failed", zap.Error(err))
		return false
	}
}

func (s *Shell) defineHabit(ctx context.Context) error {
	choices := append(append([]string{}, habitsvc.PredefinedHabits...), CustomHabit)

	name, err := s.prompter.Select(ctx, "Choose a habit type:", choices)
	if err != nil {
		return err
	}

	if name == CustomHabit {
		name, err = s.prompter.Input(ctx, "Enter the name of your habit:")
		if err != nil {
			return err
		}
	}

	periodicity, err := s.selectPeriodicity(ctx, "How often would you like to track this habit?")
	if err != nil {
		return err
	}

	duration, err := s.prompter.Input(ctx, "For how many days or weeks do you want to track this habit?")
	if err != nil {
		return err
	}

	record, err := s.habitService.DefineHabit(ctx, name, periodicity, duration)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Habit '%s' saved (%s, %s)\n", record.Name, record.Periodicity, record.Duration)
	return nil
}

func (s *Shell) checkProgress(ctx context.Context) error {
	records, err := s.habitService.ListHabits(ctx)
	if err != nil {
		return err
	}

	renderRecords(s.out, records)
	return nil
}

func (s *Shell) habitAnalytics(ctx context.Context) error {
	choice, err := s.prompter.Select(ctx, "Choose an analytics option:", analyticsMenu)
	if err != nil {
		return err
	}

	switch choice {
	case AnalyticsListAll:
		names, err := s.analyticsService.ListHabitNames(ctx)
		if err != nil {
			return err
		}
		renderNames(s.out, names)

	case AnalyticsByPeriodicity:
		periodicity, err := s.selectPeriodicity(ctx, "Choose the periodicity:")
		if err != nil {
			return err
		}
		names, err := s.analyticsService.ListHabitNamesByPeriodicity(ctx, periodicity)
		if err != nil {
			return err
		}
		renderNames(s.out, names)

	case AnalyticsLongest:
		report, err := s.analyticsService.LongestStreak(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, report.String())

	case AnalyticsLongestFor:
		name, err := s.prompter.Input(ctx, "Enter the name of the habit:")
		if err != nil {
			return err
		}
		report, err := s.analyticsService.LongestStreakFor(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, report.String())

	case AnalyticsBack:
	}

	return nil
}

func (s *Shell) selectPeriodicity(ctx context.Context, title string) (entity.Periodicity, error) {
	choices := make([]string, 0, len(entity.Periodicities))
	for _, p := range entity.Periodicities {
		choices = append(choices, string(p))
	}

	choice, err := s.prompter.Select(ctx, title, choices)
	if err != nil {
		return "", err
	}
	return entity.Periodicity(choice), nil
}
