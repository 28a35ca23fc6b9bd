package output

import (
	"context"

	"jadwal/internal/domain/entities"
)

type CourseRepository interface {
	List(ctx context.Context) ([]entities.Course, error)
	FindByID(ctx context.Context, id string) (*entities.Course, error)
	FindByCode(ctx context.Context, code string) (*entities.Course, error)
	Create(ctx context.Context, course *entities.Course) error
	Update(ctx context.Context, course *entities.Course) error
	Delete(ctx context.Context, id string) error
}

type RoomRepository interface {
	List(ctx context.Context) ([]entities.Room, error)
	FindByID(ctx context.Context, id string) (*entities.Room, error)
	Create(ctx context.Context, room *entities.Room) error
	Update(ctx context.Context, room *entities.Room) error
	Delete(ctx context.Context, id string) error
}
