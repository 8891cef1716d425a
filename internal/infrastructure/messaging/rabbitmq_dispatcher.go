package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rubrox/internal/domain/entities"
	"rubrox/internal/infrastructure/config"
	"rubrox/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp.Channel the dispatcher needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type envelope struct {
	EventName string               `json:"event_name"`
	Data      entities.DomainEvent `json:"data"`
}

// RabbitMQDispatcher publishes each event to a topic exchange, routed by event name.
type RabbitMQDispatcher struct {
	publisher Publisher
	exchange  string
	logger    *zap.Logger
}

var _ interfaces.IEventDispatcher = (*RabbitMQDispatcher)(nil)

func NewRabbitMQDispatcher(publisher Publisher, exchange string, logger *zap.Logger) *RabbitMQDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RabbitMQDispatcher{publisher: publisher, exchange: exchange, logger: logger}
}

// Dispatch publishes every event and returns the joined failures.
func (d *RabbitMQDispatcher) Dispatch(ctx context.Context, events []entities.DomainEvent) error {
	var errs []error
	for _, e := range events {
		body, err := json.Marshal(envelope{EventName: e.EventName(), Data: e})
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", e.EventName(), err))
			continue
		}

		msg := amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.EventID(),
			Type:         e.EventName(),
			Timestamp:    e.OccurredAt(),
			Headers:      amqp.Table{"aggregate_id": e.AggregateID()},
			Body:         body,
		}
		if err := d.publisher.PublishWithContext(ctx, d.exchange, e.EventName(), false, false, msg); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", e.EventName(), err))
			continue
		}
		d.logger.Debug("[events][rabbitmq] published",
			zap.String("event", e.EventName()),
			zap.String("event_id", e.EventID()))
	}
	return errors.Join(errs...)
}

// Connection owns the AMQP connection and the channel events are published on.
type Connection struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

// Connect dials the broker and declares the durable topic exchange.
func Connect(cfg config.AMQPConfig) (*Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	return &Connection{conn: conn, Channel: ch}, nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Channel.Close(), c.conn.Close())
}
