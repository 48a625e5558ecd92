// Package kafka publishes order lifecycle changes for downstream consumers.
// Messages are JSON, keyed by order id so every change of one order lands on
// the same partition in commit order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campusdelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderPlaced        = "ORDER_PLACED"
	EventOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventMessage is the wire format of every published message.
type OrderEventMessage struct {
	EventType  string    `json:"eventType"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId,omitempty"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	ActorType  string    `json:"actorType,omitempty"`
	ActorID    string    `json:"actorId,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Total      string    `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventsPublisher implements ports.EventPublisher on a kafka-go writer.
type OrderEventsPublisher struct {
	writer messageWriter
}

func NewOrderEventsPublisher(brokers []string, topic string) *OrderEventsPublisher {
	return newOrderEventsPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
}

func newOrderEventsPublisher(writer messageWriter) *OrderEventsPublisher {
	return &OrderEventsPublisher{writer: writer}
}

func (p *OrderEventsPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	return p.write(ctx, OrderEventMessage{
		EventType:  EventOrderPlaced,
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		ToStatus:   o.Status().String(),
		Total:      o.Total().String(),
		OccurredAt: o.CreatedAt(),
	})
}

func (p *OrderEventsPublisher) PublishStatusChanged(ctx context.Context, event order.Event) error {
	msg := OrderEventMessage{
		EventType:  EventOrderStatusChanged,
		OrderID:    event.OrderID().String(),
		FromStatus: event.From().String(),
		ToStatus:   event.To().String(),
		ActorType:  string(event.Actor().Type()),
		Reason:     event.Reason(),
		OccurredAt: event.OccurredAt(),
	}
	if id := event.Actor().ID(); !id.IsZero() {
		msg.ActorID = id.String()
	}
	return p.write(ctx, msg)
}

func (p *OrderEventsPublisher) write(ctx context.Context, msg OrderEventMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.EventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: payload,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(msg.EventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s for order %s: %w", msg.EventType, msg.OrderID, err)
	}
	return nil
}

// Close flushes pending messages.
func (p *OrderEventsPublisher) Close() error {
	return p.writer.Close()
}
