// Package jobs holds the periodic tasks run next to the HTTP server.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/input"
	"jadwal/internal/ports/output"
)

const digestTimeout = time.Minute

// Digest reports the conflicts left in the stored schedule.
type Digest struct {
	schedules input.ScheduleUseCase
	notifier  output.ChangeNotifier
	locale    string
	logger    *zap.Logger
	now       func() time.Time
}

func NewDigest(schedules input.ScheduleUseCase, notifier output.ChangeNotifier, locale string, logger *zap.Logger) *Digest {
	return &Digest{
		schedules: schedules,
		notifier:  notifier,
		locale:    locale,
		logger:    logger,
		now:       time.Now,
	}
}

// Run notifies a digest change when at least one event conflicts. It
// returns the number of conflicting events.
func (d *Digest) Run(ctx context.Context) (int, error) {
	reports, err := d.schedules.CheckConflicts(ctx, d.locale)
	if err != nil {
		return 0, fmt.Errorf("check conflicts: %w", err)
	}
	if len(reports) == 0 {
		d.logger.Info("✅ Aucun conflit dans l'emploi du temps")
		return 0, nil
	}

	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.EventID)
	}
	change := entities.ChangeEvent{
		Kind:          entities.ChangeDigest,
		ScheduleIDs:   ids,
		ConflictCount: len(reports),
		At:            d.now(),
	}
	if err := d.notifier.SchedulesChanged(ctx, change); err != nil {
		return len(reports), fmt.Errorf("notify digest: %w", err)
	}
	d.logger.Info("📋 Résumé des conflits envoyé", zap.Int("conflicts", len(reports)))
	return len(reports), nil
}

// NewScheduler registers d on spec (standard five-field cron syntax) in loc.
// The caller starts and stops the returned cron.
func NewScheduler(spec string, loc *time.Location, d *Digest, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		if _, err := d.Run(ctx); err != nil {
			logger.Error("❌ Job de résumé des conflits", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("digest cron %q: %w", spec, err)
	}
	return c, nil
}
