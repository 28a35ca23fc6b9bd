package entities

import "time"

// Change kinds published when the schedule set is modified.
const (
	ChangeCreated   = "created"
	ChangeUpdated   = "updated"
	ChangeDeleted   = "deleted"
	ChangeGenerated = "generated"
	ChangeDigest    = "digest"
)

// ChangeEvent tells subscribers that stored schedules changed and must be
// reloaded and re-marked.
type ChangeEvent struct {
	Kind          string    `json:"kind"`
	ScheduleIDs   []string  `json:"scheduleIds,omitempty"`
	ConflictCount int       `json:"conflictCount"`
	At            time.Time `json:"at"`
}
