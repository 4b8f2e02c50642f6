package service

import "habits-cli/internal/domain/entity"

// DistinctNames returns the unique habit names in order of first appearance
func DistinctNames(records []*entity.HabitRecord) []string {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))

	for _, record := range records {
		if _, ok := seen[record.Name]; ok {
			continue
		}
		seen[record.Name] = struct{}{}
		names = append(names, record.Name)
	}

	return names
}

// NamesByPeriodicity returns the unique names of records whose periodicity
// matches exactly (case-sensitive)
func NamesByPeriodicity(records []*entity.HabitRecord, periodicity entity.Periodicity) []string {
	matching := make([]*entity.HabitRecord, 0, len(records))
	for _, record := range records {
		if record.Periodicity == periodicity {
			matching = append(matching, record)
		}
	}

	return DistinctNames(matching)
}

// LongestOccurrence scans records counting occurrences per name and reports
// the highest count. On ties the name that reached the count first wins.
func LongestOccurrence(records []*entity.HabitRecord) *entity.OccurrenceReport {
	report := &entity.OccurrenceReport{}
	counts := make(map[string]int)

	for _, record := range records {
		counts[record.Name]++

		if counts[record.Name] > report.Count {
			report.Name = record.Name
			report.Count = counts[record.Name]
			report.Found = true
		}
	}

	return report
}

// LongestOccurrenceFor runs the same scan as LongestOccurrence but only tracks
// the given name. An absent name yields a zero count.
func LongestOccurrenceFor(records []*entity.HabitRecord, name string) *entity.OccurrenceReport {
	report := &entity.OccurrenceReport{Name: name, Scoped: true}
	counts := make(map[string]int)

	for _, record := range records {
		counts[record.Name]++

		if record.Name == name && counts[record.Name] > report.Count {
			report.Count = counts[record.Name]
			report.Found = true
		}
	}

	return report
}
