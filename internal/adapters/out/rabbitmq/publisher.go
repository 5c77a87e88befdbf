package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const statusExchange = "order_status_fanout"

// StatusChangedMessage is the wire form of an order status change event.
type StatusChangedMessage struct {
	OrderID       string    `json:"order_id"`
	ShopID        string    `json:"shop_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	DeliveryType  string    `json:"delivery_type"`
	Total         string    `json:"total"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type publisher struct {
	conn Connection
}

// NewPublisher creates an OrderEventPublisher backed by the given connection.
func NewPublisher(conn Connection) ports.OrderEventPublisher {
	return &publisher{conn: conn}
}

func (p *publisher) PublishStatusChanged(_ context.Context, aggregate *order.Order) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(statusExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	msg := StatusChangedMessage{
		OrderID:       aggregate.ID().String(),
		ShopID:        aggregate.ShopID(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		DeliveryType:  aggregate.DeliveryType().String(),
		Total:         aggregate.Total().StringFixed(2),
		OccurredAt:    aggregate.UpdatedAt(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(statusExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
