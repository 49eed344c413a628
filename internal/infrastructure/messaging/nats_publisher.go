package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

// Config holds NATS configuration.
type Config struct {
	URL            string
	Name           string
	Subject        string
	ReconnectWait  time.Duration
	MaxReconnects  int
	ConnectTimeout time.Duration
}

// NATSPublisher relays committed ledger events to NATS.
//
// Each event is published on "<Subject>.<kind>", e.g. carbody.events.claim.approved.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(cfg Config) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("[events][nats] disconnected err=%v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("[events][nats] reconnected url=%s", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Printf("[events][nats] connected url=%s subject=%s", cfg.URL, cfg.Subject)
	return &NATSPublisher{conn: conn, subject: cfg.Subject}, nil
}

// Publish sends events in order and flushes so they leave the client buffer
// before returning.
func (p *NATSPublisher) Publish(ctx context.Context, events []entities.Event) error {
	if p == nil || p.conn == nil {
		return fmt.Errorf("not connected")
	}
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event seq=%d: %w", e.Sequence, err)
		}
		if err := p.conn.Publish(Subject(p.subject, e.Kind), payload); err != nil {
			return fmt.Errorf("failed to publish event seq=%d: %w", e.Sequence, err)
		}
	}
	return p.conn.FlushWithContext(ctx)
}

func (p *NATSPublisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

func Subject(prefix string, kind entities.EventKind) string {
	return prefix + "." + string(kind)
}
