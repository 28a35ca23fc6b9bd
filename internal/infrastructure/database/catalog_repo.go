package database

import (
	"context"
	"fmt"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var (
	_ output.CourseRepository = (*CourseRepository)(nil)
	_ output.RoomRepository   = (*RoomRepository)(nil)
)

type CourseRepository struct {
	q *Queries
}

func NewCourseRepository(q *Queries) *CourseRepository {
	return &CourseRepository{q: q}
}

func (r *CourseRepository) List(ctx context.Context) ([]entities.Course, error) {
	rows, err := r.q.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	out := make([]entities.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, courseToDomain(row))
	}
	return out, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*entities.Course, error) {
	row, err := r.q.GetCourse(ctx, id)
	if isNoRows(err) {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course by id: %w", err)
	}
	c := courseToDomain(row)
	return &c, nil
}

func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*entities.Course, error) {
	row, err := r.q.GetCourseByCode(ctx, code)
	if isNoRows(err) {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course by code: %w", err)
	}
	c := courseToDomain(row)
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	err := r.q.InsertCourse(ctx, courseFromDomain(course))
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCode
	}
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course *entities.Course) error {
	n, err := r.q.UpdateCourse(ctx, courseFromDomain(course))
	if isUniqueViolation(err) {
		return domain.ErrDuplicateCode
	}
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if n == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	n, err := r.q.DeleteCourse(ctx, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if n == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

type RoomRepository struct {
	q *Queries
}

func NewRoomRepository(q *Queries) *RoomRepository {
	return &RoomRepository{q: q}
}

func (r *RoomRepository) List(ctx context.Context) ([]entities.Room, error) {
	rows, err := r.q.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]entities.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, roomToDomain(row))
	}
	return out, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*entities.Room, error) {
	row, err := r.q.GetRoom(ctx, id)
	if isNoRows(err) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	room := roomToDomain(row)
	return &room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *entities.Room) error {
	if err := r.q.InsertRoom(ctx, roomFromDomain(room)); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entities.Room) error {
	n, err := r.q.UpdateRoom(ctx, roomFromDomain(room))
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	n, err := r.q.DeleteRoom(ctx, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
