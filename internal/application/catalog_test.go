package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadwal/internal/domain"
	"jadwal/internal/infrastructure/memory"
	"jadwal/internal/ports/input"
)

func TestCourseService_CreateNormalizes(t *testing.T) {
	svc := NewCourseService(memory.NewCourseRepository())
	svc.now = func() time.Time { return fixedNow }

	c, err := svc.Create(context.Background(), input.CourseInput{Code: " cs401 ", Name: " Kecerdasan Buatan ", Credits: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "CS401", c.Code)
	assert.Equal(t, "Kecerdasan Buatan", c.Name)
	assert.Equal(t, fixedNow, c.CreatedAt)
}

func TestCourseService_Validation(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCourseRepository()
	svc := NewCourseService(repo)

	_, err := svc.Create(ctx, input.CourseInput{Code: "CS1"})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)

	first, err := svc.Create(ctx, input.CourseInput{Code: "CS1", Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, input.CourseInput{Code: "cs1", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	second, err := svc.Create(ctx, input.CourseInput{Code: "CS2", Name: "B"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, second.ID, input.CourseInput{Code: "CS1", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	updated, err := svc.Update(ctx, first.ID, input.CourseInput{Code: "CS1", Name: "A2", InstructorName: "Dr. X"})
	require.NoError(t, err, "keeping its own code is allowed")
	assert.Equal(t, "A2", updated.Name)

	_, err = svc.Update(ctx, "missing", input.CourseInput{Code: "CS9", Name: "Z"})
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_ListSortsByCode(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(memory.NewCourseRepository())
	for _, code := range []string{"MTK101", "CS201", "CS101"} {
		_, err := svc.Create(ctx, input.CourseInput{Code: code, Name: code})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "CS101", list[0].Code)
	assert.Equal(t, "MTK101", list[2].Code)

	require.NoError(t, svc.Delete(ctx, list[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, list[0].ID), domain.ErrCourseNotFound)
}

func TestRoomService(t *testing.T) {
	ctx := context.Background()
	svc := NewRoomService(memory.NewRoomRepository())

	_, err := svc.Create(ctx, input.RoomInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)

	for _, in := range []input.RoomInput{
		{Name: "B201", Building: "Gedung B"},
		{Name: "A102", Building: "Gedung A"},
		{Name: "A101", Building: "Gedung A", Capacity: 40},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"A101", "A102", "B201"}, []string{list[0].Name, list[1].Name, list[2].Name})

	r, err := svc.Update(ctx, list[0].ID, input.RoomInput{Name: "A100", Building: "Gedung A", Capacity: 60})
	require.NoError(t, err)
	assert.Equal(t, 60, r.Capacity)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}
