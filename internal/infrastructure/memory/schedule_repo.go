package memory

import (
	"context"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.ScheduleRepository = (*ScheduleRepository)(nil)

type ScheduleRepository struct {
	t *table[entities.ScheduledEvent]
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{t: newTable[entities.ScheduledEvent]()}
}

func (r *ScheduleRepository) List(_ context.Context) ([]entities.ScheduledEvent, error) {
	return r.t.list(), nil
}

func (r *ScheduleRepository) FindByID(_ context.Context, id string) (*entities.ScheduledEvent, error) {
	e, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	return &e, nil
}

func (r *ScheduleRepository) Create(_ context.Context, event *entities.ScheduledEvent) error {
	r.t.put(event.ID, *event)
	return nil
}

func (r *ScheduleRepository) Update(_ context.Context, event *entities.ScheduledEvent) error {
	if _, ok := r.t.get(event.ID); !ok {
		return domain.ErrScheduleNotFound
	}
	r.t.put(event.ID, *event)
	return nil
}

func (r *ScheduleRepository) Delete(_ context.Context, id string) error {
	if !r.t.remove(id) {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) SaveConflictState(_ context.Context, events []entities.ScheduledEvent) error {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	r.t.update(ids, func(i int, row entities.ScheduledEvent) entities.ScheduledEvent {
		row.HasConflict = events[i].HasConflict
		row.ConflictCategory = events[i].ConflictCategory
		return row
	})
	return nil
}

func (r *ScheduleRepository) ReplaceAll(_ context.Context, events []entities.ScheduledEvent) error {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	rows := make([]entities.ScheduledEvent, len(events))
	copy(rows, events)
	r.t.replace(ids, rows)
	return nil
}

// WithTx restores the rows held before fn when fn fails. Callers serialise
// their own writers; a write from outside fn during a rollback is lost.
func (r *ScheduleRepository) WithTx(ctx context.Context, fn func(ctx context.Context, repo output.ScheduleRepository) error) error {
	ids, rows := r.t.snapshot()
	if err := fn(ctx, r); err != nil {
		r.t.replace(ids, rows)
		return err
	}
	return nil
}
