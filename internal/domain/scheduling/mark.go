package scheduling

import (
	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

// MarkConflicts returns a copy of events with HasConflict and
// ConflictCategory recomputed from the day and time fields alone. Previous
// flag values are ignored, so the call is idempotent. The input slice is not
// modified.
func MarkConflicts(events []entities.ScheduledEvent) []entities.ScheduledEvent {
	out := make([]entities.ScheduledEvent, len(events))
	copy(out, events)

	conflicted := make(map[string]bool)
	for _, r := range DetectConflicts(events) {
		conflicted[r.EventID] = true
	}

	for i := range out {
		out[i].HasConflict = conflicted[out[i].ID]
		out[i].ConflictCategory = ""
		if out[i].HasConflict {
			out[i].ConflictCategory = category(events, i)
		}
	}
	return out
}

// CountConflicts returns how many events in the set overlap another one.
func CountConflicts(events []entities.ScheduledEvent) int {
	return len(DetectConflicts(events))
}

// category describes what events[i] shares with the events it overlaps.
// It is empty when the overlap is purely a cohort clash.
func category(events []entities.ScheduledEvent, i int) string {
	var sameRoom, sameInstructor bool
	e := events[i]
	for _, j := range conflictPartners(events, i) {
		o := events[j]
		if e.RoomID != "" && e.RoomID == o.RoomID {
			sameRoom = true
		}
		if e.InstructorName != "" && e.InstructorName == o.InstructorName {
			sameInstructor = true
		}
	}
	switch {
	case sameRoom && sameInstructor:
		return domain.ConflictBoth
	case sameRoom:
		return domain.ConflictRoom
	case sameInstructor:
		return domain.ConflictInstructor
	}
	return ""
}
