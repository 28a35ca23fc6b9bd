package database

import (
	"context"
	"fmt"

	"jadwal/internal/domain"
	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.ScheduleRepository = (*ScheduleRepository)(nil)

// ScheduleRepository implements output.ScheduleRepository on PostgreSQL.
type ScheduleRepository struct {
	q *Queries
}

func NewScheduleRepository(q *Queries) *ScheduleRepository {
	return &ScheduleRepository{q: q}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]entities.ScheduledEvent, error) {
	rows, err := r.q.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	out := make([]entities.ScheduledEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleToDomain(row))
	}
	return out, nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*entities.ScheduledEvent, error) {
	row, err := r.q.GetSchedule(ctx, id)
	if isNoRows(err) {
		return nil, domain.ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}
	e := scheduleToDomain(row)
	return &e, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, event *entities.ScheduledEvent) error {
	if err := r.q.InsertSchedule(ctx, scheduleFromDomain(event)); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Update(ctx context.Context, event *entities.ScheduledEvent) error {
	n, err := r.q.UpdateSchedule(ctx, scheduleFromDomain(event))
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if n == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	n, err := r.q.DeleteSchedule(ctx, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if n == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) SaveConflictState(ctx context.Context, events []entities.ScheduledEvent) error {
	return r.q.InTx(ctx, func(q *Queries) error {
		for _, e := range events {
			if err := q.UpdateScheduleConflict(ctx, e.ID, e.HasConflict, e.ConflictCategory); err != nil {
				return fmt.Errorf("save conflict state %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) ReplaceAll(ctx context.Context, events []entities.ScheduledEvent) error {
	return r.q.InTx(ctx, func(q *Queries) error {
		if err := q.DeleteAllSchedules(ctx); err != nil {
			return fmt.Errorf("clear schedules: %w", err)
		}
		for i := range events {
			if err := q.InsertSchedule(ctx, scheduleFromDomain(&events[i])); err != nil {
				return fmt.Errorf("insert schedule %s: %w", events[i].ID, err)
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) WithTx(ctx context.Context, fn func(ctx context.Context, repo output.ScheduleRepository) error) error {
	return r.q.InTx(ctx, func(q *Queries) error {
		return fn(ctx, &ScheduleRepository{q: q})
	})
}
