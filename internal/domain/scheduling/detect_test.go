package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

func ev(id string, day domain.Weekday, start, end string) entities.ScheduledEvent {
	return entities.ScheduledEvent{
		ID:        id,
		Day:       day,
		StartTime: domain.MustTimeOfDay(start),
		EndTime:   domain.MustTimeOfDay(end),
	}
}

// demoEvents mirrors the seeded demo week: sch-1/sch-2 and sch-4/sch-5 clash.
func demoEvents() []entities.ScheduledEvent {
	events := []entities.ScheduledEvent{
		ev("sch-1", domain.Monday, "07:00", "09:30"),
		ev("sch-2", domain.Monday, "07:00", "09:30"),
		ev("sch-3", domain.Monday, "09:30", "12:00"),
		ev("sch-4", domain.Tuesday, "07:00", "09:30"),
		ev("sch-5", domain.Tuesday, "07:50", "10:20"),
		ev("sch-6", domain.Wednesday, "12:30", "15:00"),
	}
	rooms := []string{"room-1", "room-2", "room-2", "room-3", "room-4", "room-5"}
	for i := range events {
		events[i].RoomID = rooms[i]
	}
	return events
}

func TestDetectConflicts_Overlap(t *testing.T) {
	reports := DetectConflicts([]entities.ScheduledEvent{
		ev("a", domain.Monday, "07:00", "09:00"),
		ev("b", domain.Monday, "08:00", "10:00"),
	})

	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].EventID)
	assert.Equal(t, []string{"b"}, reports[0].ConflictingWith)
	assert.Equal(t, "b", reports[1].EventID)
	assert.Equal(t, []string{"a"}, reports[1].ConflictingWith)
	assert.Equal(t, "time overlap with 1 other event(s)", reports[0].Reason)
}

func TestDetectConflicts_NoConflict(t *testing.T) {
	tests := []struct {
		name   string
		events []entities.ScheduledEvent
	}{
		{
			name:   "empty",
			events: nil,
		},
		{
			name: "touching boundary",
			events: []entities.ScheduledEvent{
				ev("a", domain.Monday, "07:00", "09:00"),
				ev("b", domain.Monday, "09:00", "11:00"),
			},
		},
		{
			name: "different days same time",
			events: []entities.ScheduledEvent{
				ev("a", domain.Monday, "07:00", "09:00"),
				ev("b", domain.Tuesday, "07:00", "09:00"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, DetectConflicts(tt.events))
		})
	}
}

func TestDetectConflicts_IgnoresRoom(t *testing.T) {
	a := ev("a", domain.Friday, "10:00", "11:00")
	a.RoomID = "room-1"
	b := ev("b", domain.Friday, "10:30", "11:30")
	b.RoomID = "room-6"

	reports := DetectConflicts([]entities.ScheduledEvent{a, b})
	assert.Len(t, reports, 2)
}

func TestDetectConflicts_ContainedInterval(t *testing.T) {
	reports := DetectConflicts([]entities.ScheduledEvent{
		ev("outer", domain.Thursday, "07:00", "12:00"),
		ev("inner", domain.Thursday, "08:40", "09:30"),
	})
	assert.Len(t, reports, 2)
}

func TestDetectConflicts_MultiplePartnersFollowInputOrder(t *testing.T) {
	reports := DetectConflicts([]entities.ScheduledEvent{
		ev("x", domain.Monday, "07:00", "12:00"),
		ev("y", domain.Monday, "07:00", "07:50"),
		ev("z", domain.Monday, "10:20", "11:10"),
		ev("w", domain.Monday, "13:20", "14:10"),
	})

	require.Len(t, reports, 3)
	assert.Equal(t, "x", reports[0].EventID)
	assert.Equal(t, []string{"y", "z"}, reports[0].ConflictingWith)
	assert.Equal(t, "time overlap with 2 other event(s)", reports[0].Reason)
	assert.Equal(t, "y", reports[1].EventID)
	assert.Equal(t, "z", reports[2].EventID)
}

func TestDetectConflicts_DeduplicatesPartners(t *testing.T) {
	reports := DetectConflicts([]entities.ScheduledEvent{
		ev("a", domain.Monday, "07:00", "09:00"),
		ev("b", domain.Monday, "08:00", "10:00"),
		ev("b", domain.Monday, "08:30", "09:30"),
	})

	require.NotEmpty(t, reports)
	assert.Equal(t, []string{"b"}, reports[0].ConflictingWith)
}

func TestDetectConflicts_DemoWeek(t *testing.T) {
	reports := DetectConflicts(demoEvents())

	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.EventID)
	}
	assert.Equal(t, []string{"sch-1", "sch-2", "sch-4", "sch-5"}, ids)
}

func TestDetectConflicts_DoesNotMutateInput(t *testing.T) {
	events := demoEvents()
	before := make([]entities.ScheduledEvent, len(events))
	copy(before, events)

	DetectConflicts(events)
	assert.Equal(t, before, events)
}
