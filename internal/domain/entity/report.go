package entity

import "fmt"

// OccurrenceReport is the result of a longest "streak" query.
// A streak here is the number of stored rows sharing a habit name.
type OccurrenceReport struct {
	Name  string
	Count int

	// Found is false when no record was scanned at all
	Found bool

	// Scoped is true when the query was restricted to a single habit name
	Scoped bool
}

// String formats the report for display
func (r *OccurrenceReport) String() string {
	if r.Scoped {
		return fmt.Sprintf("Longest streak for %s is %d", r.Name, r.Count)
	}
	if !r.Found {
		return "No habits found"
	}
	return fmt.Sprintf("Longest run streak is %d for '%s'", r.Count, r.Name)
}
