package mongostore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var (
	_ output.CourseRepository = (*CourseRepository)(nil)
	_ output.RoomRepository   = (*RoomRepository)(nil)
)

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(coursesCollection)}
}

func (r *CourseRepository) List(ctx context.Context) ([]entities.Course, error) {
	out, err := findAll[entities.Course](ctx, r.coll, options.Find().SetSort(bson.D{{Key: "code", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*entities.Course, error) {
	return findOne[entities.Course](ctx, r.coll, bson.M{"_id": id}, domain.ErrCourseNotFound)
}

// Codes are stored upper-cased by the course service.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*entities.Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return findOne[entities.Course](ctx, r.coll, bson.M{"code": code}, domain.ErrCourseNotFound)
}

func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	_, err := r.coll.InsertOne(ctx, course)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateCode
	}
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course *entities.Course) error {
	err := replaceByID(ctx, r.coll, course.ID, course, domain.ErrCourseNotFound)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateCode
	}
	return err
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, domain.ErrCourseNotFound)
}

type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

func (r *RoomRepository) List(ctx context.Context) ([]entities.Room, error) {
	sort := options.Find().SetSort(bson.D{{Key: "building", Value: 1}, {Key: "name", Value: 1}})
	out, err := findAll[entities.Room](ctx, r.coll, sort)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return out, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*entities.Room, error) {
	return findOne[entities.Room](ctx, r.coll, bson.M{"_id": id}, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Create(ctx context.Context, room *entities.Room) error {
	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entities.Room) error {
	return replaceByID(ctx, r.coll, room.ID, room, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, domain.ErrRoomNotFound)
}
