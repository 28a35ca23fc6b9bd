package scheduling

import (
	"fmt"

	"github.com/google/uuid"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

// CourseToPlace is a course the generator must find a slot for.
type CourseToPlace struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	InstructorName string `json:"instructorName"`
}

// RoomCandidate is a room the generator may assign.
type RoomCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GenerateResult is the outcome of a generation run.
// Events holds the baseline followed by the newly placed events.
type GenerateResult struct {
	Events   []entities.ScheduledEvent
	Placed   []entities.ScheduledEvent
	Unplaced []CourseToPlace
	Warnings []string
}

type generateOptions struct {
	calendar domain.Calendar
	newID    func() string
}

// GenerateOption customises GenerateSchedule.
type GenerateOption func(*generateOptions)

// WithDays restricts the search to days, tried in the given order.
func WithDays(days ...domain.Weekday) GenerateOption {
	return func(o *generateOptions) {
		o.calendar.Days = days
	}
}

// WithSlots replaces the default slot sequence.
func WithSlots(slots []domain.TimeSlot) GenerateOption {
	return func(o *generateOptions) {
		o.calendar.Slots = slots
	}
}

// WithCalendar sets both days and slots.
func WithCalendar(c domain.Calendar) GenerateOption {
	return func(o *generateOptions) {
		o.calendar = c
	}
}

// WithIDGenerator overrides how new event ids are minted.
func WithIDGenerator(fn func() string) GenerateOption {
	return func(o *generateOptions) {
		o.newID = fn
	}
}

// GenerateSchedule places each course, in order, into the first
// (day, slot) pair that overlaps nothing already in the working set. The
// working set starts as a copy of baseline and grows with every placement,
// so later courses see earlier ones as occupied.
//
// The occupancy check ignores rooms, so every room passes or fails together
// for a given (day, slot); placements always take the first room. With no
// rooms, nothing is placed.
//
// Baseline events are returned untouched. New events carry HasConflict=false
// and must be run through MarkConflicts before the flag is trusted.
func GenerateSchedule(
	courses []CourseToPlace,
	rooms []RoomCandidate,
	baseline []entities.ScheduledEvent,
	opts ...GenerateOption,
) GenerateResult {
	o := generateOptions{
		calendar: domain.DefaultCalendar(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	working := make([]entities.ScheduledEvent, len(baseline), len(baseline)+len(courses))
	copy(working, baseline)

	var result GenerateResult
	for _, c := range courses {
		ev, ok := placeCourse(c, rooms, working, o)
		if !ok {
			result.Unplaced = append(result.Unplaced, c)
			result.Warnings = append(result.Warnings, UnplacedWarning(c))
			continue
		}
		working = append(working, ev)
		result.Placed = append(result.Placed, ev)
	}
	result.Events = working
	return result
}

// UnplacedWarning is the warning line for a course that found no slot.
func UnplacedWarning(c CourseToPlace) string {
	return fmt.Sprintf("could not assign %s (%s): no free slot", c.Name, c.Code)
}

func placeCourse(c CourseToPlace, rooms []RoomCandidate, working []entities.ScheduledEvent, o generateOptions) (entities.ScheduledEvent, bool) {
	if len(rooms) == 0 {
		return entities.ScheduledEvent{}, false
	}
	for _, day := range o.calendar.Days {
		for _, slot := range o.calendar.Slots {
			if occupied(working, day, slot) {
				continue
			}
			room := rooms[0]
			return entities.ScheduledEvent{
				ID:             o.newID(),
				CourseID:       c.ID,
				CourseCode:     c.Code,
				CourseName:     c.Name,
				InstructorName: c.InstructorName,
				RoomID:         room.ID,
				RoomName:       room.Name,
				Day:            day,
				StartTime:      slot.Start,
				EndTime:        slot.End,
				HasConflict:    false,
			}, true
		}
	}
	return entities.ScheduledEvent{}, false
}

func occupied(working []entities.ScheduledEvent, day domain.Weekday, slot domain.TimeSlot) bool {
	for i := range working {
		e := &working[i]
		if e.Day == day && domain.Overlaps(e.StartTime, e.EndTime, slot.Start, slot.End) {
			return true
		}
	}
	return false
}
