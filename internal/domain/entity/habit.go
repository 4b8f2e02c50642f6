package entity

import "fmt"

// Periodicity represents how often a habit is meant to be performed
type Periodicity string

const (
	PeriodicityDaily  Periodicity = "Daily"
	PeriodicityWeekly Periodicity = "Weekly"
)

// Periodicities lists the cadences offered when defining a habit
var Periodicities = []Periodicity{PeriodicityDaily, PeriodicityWeekly}

// HabitRecord is a single stored habit definition.
// Records carry no identifier: redefining a habit appends another row with the same name.
type HabitRecord struct {
	Name        string
	Periodicity Periodicity

	// Free-form tracking duration, e.g. "30 days"
	Duration string
}

// String renders the record as a single line
func (h *HabitRecord) String() string {
	return fmt.Sprintf("%s | %s | %s", h.Name, h.Periodicity, h.Duration)
}
