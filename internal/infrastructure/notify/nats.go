package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jadwal/internal/domain/entities"
	"jadwal/internal/ports/output"
)

// Subject is where schedule changes are published.
const Subject = "jadwal.schedules.changed"

var _ output.ChangeNotifier = (*NATSPublisher)(nil)

type natsMessage struct {
	ID string `json:"id"`
	entities.ChangeEvent
}

// NATSPublisher publishes change events as JSON on Subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *zap.Logger
}

// ConnectNATS dials url, retrying with exponential backoff until ctx ends or
// a minute has passed.
func ConnectNATS(ctx context.Context, url string, logger *zap.Logger) (*NATSPublisher, error) {
	var conn *nats.Conn
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = time.Minute

	err := backoff.Retry(func() error {
		c, err := nats.Connect(url,
			nats.Name("jadwal"),
			nats.MaxReconnects(-1),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				logger.Warn("⚠️ NATS déconnecté", zap.Error(err))
			}),
			nats.ReconnectHandler(func(c *nats.Conn) {
				logger.Info("🔌 NATS reconnecté", zap.String("url", c.ConnectedUrl()))
			}),
		)
		if err != nil {
			logger.Warn("⚠️ Connexion NATS impossible, nouvel essai", zap.Error(err))
			return err
		}
		conn = c
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	logger.Info("✅ NATS connecté.", zap.String("url", conn.ConnectedUrl()))
	return NewNATSPublisher(conn, Subject, logger), nil
}

func NewNATSPublisher(conn *nats.Conn, subject string, logger *zap.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject, logger: logger}
}

func (p *NATSPublisher) SchedulesChanged(_ context.Context, change entities.ChangeEvent) error {
	data, err := json.Marshal(natsMessage{ID: uuid.NewString(), ChangeEvent: change})
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("⚠️ NATS drain", zap.Error(err))
		p.conn.Close()
	}
}
