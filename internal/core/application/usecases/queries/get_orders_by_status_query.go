package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves order summaries in one lifecycle status.
// Backs the kitchen and driver dashboards, which each watch a slice of the
// lifecycle.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Preparing)
//	if err != nil {
//	    return fmt.Errorf("invalid status: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for order summaries in the given
// status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse represents one order summary in the read
// model, oldest first so the kitchen works the queue in order.
type GetOrdersByStatusQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	DeliveryType  string
	Status        string
	PaymentStatus string
	Total         decimal.Decimal
	CreatedAt     time.Time
}
