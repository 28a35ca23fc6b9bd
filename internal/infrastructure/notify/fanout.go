package notify

import (
	"context"
	"errors"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.ChangeNotifier = (Fanout)(nil)

// Fanout forwards every change to each notifier and joins their errors.
type Fanout []output.ChangeNotifier

func (f Fanout) SchedulesChanged(ctx context.Context, change entities.ChangeEvent) error {
	var errs []error
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.SchedulesChanged(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
