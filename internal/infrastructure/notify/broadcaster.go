// Package notify delivers "schedules changed" signals to subscribers.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

var _ output.ChangeNotifier = (*Broadcaster)(nil)

// Broadcaster fans change events out to in-process subscribers. A slow
// subscriber drops events instead of blocking the publisher.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]chan entities.ChangeEvent
	nextID int
	buffer int
	logger *zap.Logger
}

func NewBroadcaster(buffer int, logger *zap.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = 16
	}
	return &Broadcaster{
		subs:   make(map[int]chan entities.ChangeEvent),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe returns a channel of change events and a function that
// unsubscribes and closes it.
func (b *Broadcaster) Subscribe() (<-chan entities.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan entities.ChangeEvent, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *Broadcaster) SchedulesChanged(_ context.Context, change entities.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- change:
		default:
			b.logger.Warn("⚠️ Abonné saturé, événement ignoré", zap.Int("subscriber", id), zap.String("kind", change.Kind))
		}
	}
	return nil
}
