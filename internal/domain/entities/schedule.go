package entities

import (
	"time"

	"jadwal/internal/domain"
)

// ScheduledEvent is one weekly occurrence of a course in a room.
// CourseCode, CourseName, InstructorName and RoomName are display caches of
// the referenced course and room. HasConflict and ConflictCategory are
// derived by the conflict marker and are stale as soon as the set changes.
type ScheduledEvent struct {
	ID               string           `json:"id" bson:"_id"`
	CourseID         string           `json:"courseId" bson:"course_id"`
	CourseCode       string           `json:"courseCode" bson:"course_code"`
	CourseName       string           `json:"courseName" bson:"course_name"`
	InstructorName   string           `json:"instructorName" bson:"instructor_name"`
	RoomID           string           `json:"roomId" bson:"room_id"`
	RoomName         string           `json:"roomName" bson:"room_name"`
	Day              domain.Weekday   `json:"day" bson:"day"`
	StartTime        domain.TimeOfDay `json:"startTime" bson:"start_time"`
	EndTime          domain.TimeOfDay `json:"endTime" bson:"end_time"`
	HasConflict      bool             `json:"hasConflict" bson:"has_conflict"`
	ConflictCategory string           `json:"conflictCategory,omitempty" bson:"conflict_category,omitempty"`
	CreatedAt        time.Time        `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" bson:"updated_at"`
}

// Overlaps reports whether e and o are on the same day with intersecting
// half-open time ranges. Rooms are not considered.
func (e *ScheduledEvent) Overlaps(o *ScheduledEvent) bool {
	return e.Day == o.Day && domain.Overlaps(e.StartTime, e.EndTime, o.StartTime, o.EndTime)
}

// ApplyCourse refreshes the course display caches.
func (e *ScheduledEvent) ApplyCourse(c *Course) {
	e.CourseID = c.ID
	e.CourseCode = c.Code
	e.CourseName = c.Name
	e.InstructorName = c.InstructorName
}

// ApplyRoom refreshes the room display cache.
func (e *ScheduledEvent) ApplyRoom(r *Room) {
	e.RoomID = r.ID
	e.RoomName = r.Name
}

// ConflictReport lists the events overlapping EventID.
type ConflictReport struct {
	EventID         string   `json:"eventId"`
	ConflictingWith []string `json:"conflictingWith"`
	Reason          string   `json:"reason"`
}
