package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"grouping-service/internal/domain"
)

// SubjectPoolAssigned - суффикс темы события назначения пула.
const SubjectPoolAssigned = "pool.assigned"

// NATSPublisher публикует доменные события в NATS в формате JSON.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	owned   bool
}

var _ domain.EventPublisher = (*NATSPublisher)(nil)

// NewNATSPublisher подключается к NATS по url. Соединение закрывается в Close.
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("grouping-service"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	publisher := NewNATSPublisherWithConn(conn, prefix)
	publisher.owned = true
	return publisher, nil
}

// NewNATSPublisherWithConn использует готовое соединение, которое остается
// во владении вызывающего кода.
func NewNATSPublisherWithConn(conn *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{
		conn:    conn,
		subject: Subject(prefix, SubjectPoolAssigned),
	}
}

// Subject собирает полное имя темы.
func Subject(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// PublishPoolAssigned публикует событие назначения пула.
func (p *NATSPublisher) PublishPoolAssigned(ctx context.Context, event *domain.PoolAssignedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", p.subject, err)
	}
	return nil
}

// Close сбрасывает буфер и закрывает собственное соединение.
func (p *NATSPublisher) Close() error {
	if !p.owned {
		return p.conn.Flush()
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}

// NopPublisher используется, когда NATS не настроен.
type NopPublisher struct{}

var _ domain.EventPublisher = NopPublisher{}

func (NopPublisher) PublishPoolAssigned(_ context.Context, _ *domain.PoolAssignedEvent) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
