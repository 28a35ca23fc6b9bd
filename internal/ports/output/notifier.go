package output

import (
	"context"

	"jadwal/internal/domain/entities"
)

// ChangeNotifier is told every time the stored schedule set changes.
type ChangeNotifier interface {
	SchedulesChanged(ctx context.Context, change entities.ChangeEvent) error
}
