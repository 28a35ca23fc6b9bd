package input

import (
	"context"

	"jadwal/internal/domain/entities"
)

type CourseInput struct {
	Code           string
	Name           string
	Credits        int
	InstructorName string
}

type RoomInput struct {
	Name     string
	Building string
	Capacity int
}

type CourseUseCase interface {
	List(ctx context.Context) ([]entities.Course, error)
	Get(ctx context.Context, id string) (*entities.Course, error)
	Create(ctx context.Context, in CourseInput) (*entities.Course, error)
	Update(ctx context.Context, id string, in CourseInput) (*entities.Course, error)
	Delete(ctx context.Context, id string) error
}

type RoomUseCase interface {
	List(ctx context.Context) ([]entities.Room, error)
	Get(ctx context.Context, id string) (*entities.Room, error)
	Create(ctx context.Context, in RoomInput) (*entities.Room, error)
	Update(ctx context.Context, id string, in RoomInput) (*entities.Room, error)
	Delete(ctx context.Context, id string) error
}
