package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// itemsColumn mirrors the JSONB shape of the orders.items column.
type itemsColumn []struct {
	MenuItemID          uuid.UUID       `json:"menu_item_id"`
	Name                string          `json:"name"`
	BasePrice           decimal.Decimal `json:"base_price"`
	FinalPrice          decimal.Decimal `json:"final_price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions"`
	Variants            []struct {
		OptionName      string          `json:"option_name"`
		VariantName     string          `json:"variant_name"`
		PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	} `json:"variants"`
}

// GetOrderQueryHandler retrieves one order's full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ErrObjectNotFound when no order has the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_id,
			customer_name,
			customer_phone,
			customer_email,
			delivery_address,
			delivery_type,
			items,
			subtotal,
			delivery_fee,
			total,
			payment_method,
			payment_status,
			status,
			driver_id,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var response GetOrderQueryResponse
	var id uuid.UUID
	var driverID uuid.NullUUID
	var rawItems []byte

	err := row.Scan(
		&id,
		&response.ShopID,
		&response.CustomerName,
		&response.CustomerPhone,
		&response.CustomerEmail,
		&response.DeliveryAddress,
		&response.DeliveryType,
		&rawItems,
		&response.Subtotal,
		&response.DeliveryFee,
		&response.Total,
		&response.PaymentMethod,
		&response.PaymentStatus,
		&response.Status,
		&driverID,
		&response.Notes,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID

	if driverID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.DriverID = &assigned
	}

	response.Items, err = decodeOrderItems(rawItems)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

// decodeOrderItems converts the stored JSON order lines into read model types.
func decodeOrderItems(raw []byte) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)
	if len(raw) == 0 {
		return items, nil
	}

	var column itemsColumn
	if err := json.Unmarshal(raw, &column); err != nil {
		return nil, err
	}

	for _, line := range column {
		menuItemID, err := kernel.UUIDFromBytes(line.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		item := OrderItemResponse{
			MenuItemID:          menuItemID,
			Name:                line.Name,
			BasePrice:           line.BasePrice,
			FinalPrice:          line.FinalPrice,
			Quantity:            line.Quantity,
			Variants:            make([]OrderItemVariantResponse, 0, len(line.Variants)),
			SpecialInstructions: line.SpecialInstructions,
		}
		for _, variant := range line.Variants {
			item.Variants = append(item.Variants, OrderItemVariantResponse(variant))
		}
		items = append(items, item)
	}

	return items, nil
}
