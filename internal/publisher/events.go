package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

const orderEventsTopic = "order-events"

// KafkaPublisher writes order lifecycle events for downstream consumers
// (fulfilment, analytics). Callers treat publishing as best effort.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  orderEventsTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

type orderCreatedEvent struct {
	OrderID       string   `json:"order_id"`
	CustomerID    string   `json:"customer_id"`
	CustomerEmail string   `json:"customer_email"`
	BusinessIDs   []string `json:"business_ids"`
	Total         float64  `json:"total"`
	CreatedAt     string   `json:"created_at"`
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		CustomerEmail: order.CustomerEmail,
		BusinessIDs:   order.BusinessIDs,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID), // order_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.created")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
