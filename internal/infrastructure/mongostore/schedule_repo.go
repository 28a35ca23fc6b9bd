package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.ScheduleRepository = (*ScheduleRepository)(nil)

type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(schedulesCollection)}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]entities.ScheduledEvent, error) {
	out, err := findAll[entities.ScheduledEvent](ctx, r.coll, byCreation)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return out, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*entities.ScheduledEvent, error) {
	return findOne[entities.ScheduledEvent](ctx, r.coll, bson.M{"_id": id}, domain.ErrScheduleNotFound)
}

func (r *ScheduleRepository) Create(ctx context.Context, event *entities.ScheduledEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, event *entities.ScheduledEvent) error {
	return replaceByID(ctx, r.coll, event.ID, event, domain.ErrScheduleNotFound)
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, domain.ErrScheduleNotFound)
}

// SaveConflictState writes only the conflict fields; unknown IDs are skipped.
func (r *ScheduleRepository) SaveConflictState(ctx context.Context, events []entities.ScheduledEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(events))
	for _, e := range events {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": e.ID}).
			SetUpdate(bson.M{"$set": bson.M{
				"has_conflict":      e.HasConflict,
				"conflict_category": e.ConflictCategory,
			}}))
	}
	if _, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("save conflict state: %w", err)
	}
	return nil
}

// ReplaceAll is not atomic: standalone servers have no multi-document
// transactions.
func (r *ScheduleRepository) ReplaceAll(ctx context.Context, events []entities.ScheduledEvent) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear schedules: %w", err)
	}
	if len(events) == 0 {
		return nil
	}
	docs := make([]any, len(events))
	for i := range events {
		docs[i] = events[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert schedules: %w", err)
	}
	return nil
}

// WithTx runs fn directly against r. Like ReplaceAll it is not atomic, and
// writes made before a failure stay in place.
func (r *ScheduleRepository) WithTx(ctx context.Context, fn func(ctx context.Context, repo output.ScheduleRepository) error) error {
	return fn(ctx, r)
}
