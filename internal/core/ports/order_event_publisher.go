package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderEventPublisher notifies interested parties that an order's status
// changed. Publication happens after the owning transaction commits and is
// best effort: a failed publish is logged, never surfaced to the customer.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
