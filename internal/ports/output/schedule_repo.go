package output

import (
	"context"

	"jadwal/internal/domain/entities"
)

// ScheduleRepository stores scheduled events. Lookups of unknown ids return
// domain.ErrScheduleNotFound.
type ScheduleRepository interface {
	List(ctx context.Context) ([]entities.ScheduledEvent, error)
	FindByID(ctx context.Context, id string) (*entities.ScheduledEvent, error)
	Create(ctx context.Context, event *entities.ScheduledEvent) error
	Update(ctx context.Context, event *entities.ScheduledEvent) error
	Delete(ctx context.Context, id string) error
	// SaveConflictState persists HasConflict and ConflictCategory of every
	// given event, leaving other fields alone.
	SaveConflictState(ctx context.Context, events []entities.ScheduledEvent) error
	// ReplaceAll swaps the whole stored set for events.
	ReplaceAll(ctx context.Context, events []entities.ScheduledEvent) error
	// WithTx runs fn against a repository whose writes are committed
	// together when fn returns nil and discarded otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, repo ScheduleRepository) error) error
}
