package memory

import (
	"context"
	"strings"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var (
	_ output.CourseRepository = (*CourseRepository)(nil)
	_ output.RoomRepository   = (*RoomRepository)(nil)
)

type CourseRepository struct {
	t *table[entities.Course]
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{t: newTable[entities.Course]()}
}

func (r *CourseRepository) List(_ context.Context) ([]entities.Course, error) {
	return r.t.list(), nil
}

func (r *CourseRepository) FindByID(_ context.Context, id string) (*entities.Course, error) {
	c, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return &c, nil
}

func (r *CourseRepository) FindByCode(_ context.Context, code string) (*entities.Course, error) {
	for _, c := range r.t.list() {
		if strings.EqualFold(c.Code, code) {
			return &c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *CourseRepository) Create(_ context.Context, course *entities.Course) error {
	r.t.put(course.ID, *course)
	return nil
}

func (r *CourseRepository) Update(_ context.Context, course *entities.Course) error {
	if _, ok := r.t.get(course.ID); !ok {
		return domain.ErrCourseNotFound
	}
	r.t.put(course.ID, *course)
	return nil
}

func (r *CourseRepository) Delete(_ context.Context, id string) error {
	if !r.t.remove(id) {
		return domain.ErrCourseNotFound
	}
	return nil
}

type RoomRepository struct {
	t *table[entities.Room]
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{t: newTable[entities.Room]()}
}

func (r *RoomRepository) List(_ context.Context) ([]entities.Room, error) {
	return r.t.list(), nil
}

func (r *RoomRepository) FindByID(_ context.Context, id string) (*entities.Room, error) {
	room, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &room, nil
}

func (r *RoomRepository) Create(_ context.Context, room *entities.Room) error {
	r.t.put(room.ID, *room)
	return nil
}

func (r *RoomRepository) Update(_ context.Context, room *entities.Room) error {
	if _, ok := r.t.get(room.ID); !ok {
		return domain.ErrRoomNotFound
	}
	r.t.put(room.ID, *room)
	return nil
}

func (r *RoomRepository) Delete(_ context.Context, id string) error {
	if !r.t.remove(id) {
		return domain.ErrRoomNotFound
	}
	return nil
}
