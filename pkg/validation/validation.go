package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxHabitNameLength = 255
	MaxDurationLength  = 64
)

// ErrInvalidInput is wrapped by every validation failure
var ErrInvalidInput = errors.New("invalid input")

// ValidateHabitName validates a habit name
func ValidateHabitName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: habit name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > MaxHabitNameLength {
		return fmt.Errorf("%w: habit name is too long (max %d characters)", ErrInvalidInput, MaxHabitNameLength)
	}

	return nil
}

// ValidateDuration validates a free-form tracking duration such as "30 days".
// The value is not parsed.
func ValidateDuration(duration string) error {
	duration = strings.TrimSpace(duration)

	if duration == "" {
		return fmt.Errorf("%w: duration is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(duration) > MaxDurationLength {
		return fmt.Errorf("%w: duration is too long (max %d characters)", ErrInvalidInput, MaxDurationLength)
	}

	return nil
}
