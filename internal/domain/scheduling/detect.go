// Package scheduling holds the conflict engine: overlap detection, conflict
// marking and greedy slot assignment. It works on in-memory slices only.
package scheduling

import (
	"fmt"

	"jadwal/internal/domain/entities"
)

// DetectConflicts compares every event with every other event and returns one
// report per event that overlaps at least one other event on the same day.
// Rooms are ignored: a cohort cannot attend two events at once wherever they
// are held. Reports follow input order; partner ids are de-duplicated and
// also follow input order.
func DetectConflicts(events []entities.ScheduledEvent) []entities.ConflictReport {
	var reports []entities.ConflictReport
	for i := range events {
		partners := conflictPartners(events, i)
		if len(partners) == 0 {
			continue
		}
		ids := make([]string, 0, len(partners))
		seen := make(map[string]bool, len(partners))
		for _, j := range partners {
			id := events[j].ID
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		reports = append(reports, entities.ConflictReport{
			EventID:         events[i].ID,
			ConflictingWith: ids,
			Reason:          Reason(len(ids)),
		})
	}
	return reports
}

// Reason is the report text for an event overlapping n others.
func Reason(n int) string {
	return fmt.Sprintf("time overlap with %d other event(s)", n)
}

// conflictPartners returns the indexes of the events overlapping events[i].
func conflictPartners(events []entities.ScheduledEvent, i int) []int {
	var out []int
	for j := range events {
		if i == j {
			continue
		}
		if events[i].Overlaps(&events[j]) {
			out = append(out, j)
		}
	}
	return out
}
