package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its full detail: customer, lines,
// variant snapshots, money, and both statuses. Customers poll this to track
// their order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order does not exist
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemVariantResponse represents one chosen variant snapshot.
type OrderItemVariantResponse struct {
	OptionName      string
	VariantName     string
	PriceAdjustment decimal.Decimal
}

// OrderItemResponse represents one priced order line in the read model.
type OrderItemResponse struct {
	MenuItemID          kernel.UUID
	Name                string
	BasePrice           decimal.Decimal
	FinalPrice          decimal.Decimal
	Quantity            int
	Variants            []OrderItemVariantResponse
	SpecialInstructions string
}

// GetOrderQueryResponse represents one order in full detail.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	ShopID          string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	DeliveryType    string
	Items           []OrderItemResponse
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	DriverID        *kernel.UUID
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
