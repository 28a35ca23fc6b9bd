package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
)

func courses(n int) []CourseToPlace {
	out := make([]CourseToPlace, n)
	for i := range out {
		out[i] = CourseToPlace{
			ID:             fmt.Sprintf("course-%d", i+1),
			Code:           fmt.Sprintf("CS%d", 101+i),
			Name:           fmt.Sprintf("Course %d", i+1),
			InstructorName: fmt.Sprintf("Dr. %d", i+1),
		}
	}
	return out
}

var twoRooms = []RoomCandidate{{ID: "room-1", Name: "A101"}, {ID: "room-2", Name: "A102"}}

func sequentialIDs() GenerateOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	})
}

func TestGenerateSchedule_PlacesAllCoursesWithoutOverlap(t *testing.T) {
	res := GenerateSchedule(courses(3), twoRooms, nil)

	require.Len(t, res.Events, 3)
	assert.Len(t, res.Placed, 3)
	assert.Empty(t, res.Unplaced)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, DetectConflicts(res.Events))

	ids := map[string]bool{}
	for _, e := range res.Events {
		assert.False(t, e.HasConflict)
		assert.NotEmpty(t, e.ID)
		ids[e.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestGenerateSchedule_FirstFitOrder(t *testing.T) {
	res := GenerateSchedule(courses(3), twoRooms, nil, sequentialIDs())

	want := []struct {
		id, start, end string
	}{
		{"gen-1", "07:00", "07:50"},
		{"gen-2", "07:50", "08:40"},
		{"gen-3", "08:40", "09:30"},
	}
	require.Len(t, res.Events, len(want))
	for i, w := range want {
		e := res.Events[i]
		assert.Equal(t, w.id, e.ID)
		assert.Equal(t, domain.Monday, e.Day)
		assert.Equal(t, w.start, e.StartTime.String())
		assert.Equal(t, w.end, e.EndTime.String())
		assert.Equal(t, "room-1", e.RoomID, "always the first room")
		assert.Equal(t, "A101", e.RoomName)
	}
	assert.Equal(t, "course-2", res.Events[1].CourseID)
	assert.Equal(t, "CS102", res.Events[1].CourseCode)
	assert.Equal(t, "Dr. 2", res.Events[1].InstructorName)
}

func TestGenerateSchedule_SingleRoomStillDisperses(t *testing.T) {
	res := GenerateSchedule(courses(3), twoRooms[:1], nil)

	require.Len(t, res.Placed, 3)
	assert.Empty(t, DetectConflicts(res.Events))
}

func TestGenerateSchedule_RespectsBaseline(t *testing.T) {
	baseline := []entities.ScheduledEvent{
		ev("fixed-1", domain.Monday, "07:00", "09:30"),
		ev("fixed-2", domain.Monday, "09:30", "12:00"),
	}
	baseline[0].HasConflict = true

	res := GenerateSchedule(courses(2), twoRooms, baseline, sequentialIDs())

	require.Len(t, res.Events, 4)
	assert.Equal(t, baseline, res.Events[:2], "baseline is preserved verbatim")
	assert.Equal(t, "12:30", res.Events[2].StartTime.String())
	assert.Equal(t, "13:20", res.Events[3].StartTime.String())
	assert.Empty(t, DetectConflicts(res.Events))
}

func TestGenerateSchedule_DoesNotMutateBaseline(t *testing.T) {
	baseline := []entities.ScheduledEvent{ev("fixed", domain.Monday, "07:00", "07:50")}
	GenerateSchedule(courses(5), twoRooms, baseline)

	assert.Len(t, baseline, 1)
	assert.Equal(t, "fixed", baseline[0].ID)
}

func TestGenerateSchedule_MovesToNextDay(t *testing.T) {
	slots := domain.DefaultSlots()[:2]
	res := GenerateSchedule(courses(3), twoRooms, nil, WithSlots(slots))

	require.Len(t, res.Placed, 3)
	assert.Equal(t, domain.Monday, res.Placed[0].Day)
	assert.Equal(t, domain.Monday, res.Placed[1].Day)
	assert.Equal(t, domain.Tuesday, res.Placed[2].Day)
	assert.Equal(t, "07:00", res.Placed[2].StartTime.String())
}

func TestGenerateSchedule_SkipsBreaks(t *testing.T) {
	// Fill the first six slots of Monday; the next placement must be 12:30, not 12:00.
	baseline := []entities.ScheduledEvent{ev("morning", domain.Monday, "07:00", "12:00")}
	res := GenerateSchedule(courses(1), twoRooms, baseline)

	require.Len(t, res.Placed, 1)
	assert.Equal(t, "12:30", res.Placed[0].StartTime.String())
	assert.Equal(t, "13:20", res.Placed[0].EndTime.String())
}

func TestGenerateSchedule_CapacityExhausted(t *testing.T) {
	res := GenerateSchedule(courses(5), twoRooms, nil,
		WithDays(domain.Monday, domain.Tuesday),
		WithSlots(domain.DefaultSlots()[:2]),
	)

	assert.Len(t, res.Placed, 4)
	assert.Len(t, res.Events, 4)
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, "course-5", res.Unplaced[0].ID)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "CS105")
}

func TestGenerateSchedule_FullDefaultWeek(t *testing.T) {
	// 5 days x 14 slots.
	res := GenerateSchedule(courses(72), twoRooms, nil)

	assert.Len(t, res.Placed, 70)
	assert.Len(t, res.Unplaced, 2)
	assert.Empty(t, DetectConflicts(res.Events))
}

func TestGenerateSchedule_NoRooms(t *testing.T) {
	res := GenerateSchedule(courses(2), nil, nil)

	assert.Empty(t, res.Events)
	assert.Len(t, res.Unplaced, 2)
	assert.Len(t, res.Warnings, 2)
}

func TestGenerateSchedule_NoCourses(t *testing.T) {
	baseline := []entities.ScheduledEvent{ev("fixed", domain.Monday, "07:00", "07:50")}
	res := GenerateSchedule(nil, twoRooms, baseline)

	assert.Equal(t, baseline, res.Events)
	assert.Empty(t, res.Placed)
}

func TestGenerateSchedule_ThenMarkFlagsBaselineClash(t *testing.T) {
	baseline := []entities.ScheduledEvent{
		ev("a", domain.Monday, "07:00", "09:00"),
		ev("b", domain.Monday, "08:00", "10:00"),
	}
	res := GenerateSchedule(courses(1), twoRooms, baseline)
	marked := MarkConflicts(res.Events)

	require.Len(t, marked, 3)
	assert.True(t, marked[0].HasConflict)
	assert.True(t, marked[1].HasConflict)
	assert.False(t, marked[2].HasConflict)
	assert.Equal(t, "10:20", marked[2].StartTime.String())
}
