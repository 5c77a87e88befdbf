package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GroupVariantRequest references one variant within a multiple-choice group.
type GroupVariantRequest struct {
	GroupID   string `json:"group_id"`
	VariantID string `json:"variant_id"`
}

// OrderLineRequest is one cart line in a checkout request.
type OrderLineRequest struct {
	MenuItemID          string                `json:"menu_item_id"`
	Quantity            int                   `json:"quantity"`
	SingleChoices       map[string]string     `json:"single_choices"`
	MultiChoices        []GroupVariantRequest `json:"multi_choices"`
	SpecialInstructions string                `json:"special_instructions"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	ShopID          string             `json:"shop_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryType    string             `json:"delivery_type"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
	Items           []OrderLineRequest `json:"items"`
}

// PlaceOrderResponse returns the id assigned to a freshly placed order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest is a manual status transition, optionally carrying the
// driver to assign when dispatching a delivery order.
type ChangeStatusRequest struct {
	Status   string  `json:"status"`
	DriverID *string `json:"driver_id,omitempty"`
}

// RecordPaymentRequest settles or refunds an order's payment.
type RecordPaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// MenuVariantPayload is one selectable variant, shared by catalog edits and
// menu reads.
type MenuVariantPayload struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// MenuOptionPayload is one option group, shared by catalog edits and menu reads.
type MenuOptionPayload struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Mode     string               `json:"mode"`
	Required bool                 `json:"required"`
	Variants []MenuVariantPayload `json:"variants"`
}

// SaveMenuItemRequest creates or replaces a catalog item. When the id is
// empty a new one is generated.
type SaveMenuItemRequest struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	BasePrice   decimal.Decimal     `json:"base_price"`
	Category    string              `json:"category"`
	Available   bool                `json:"available"`
	Options     []MenuOptionPayload `json:"options"`
}

// SaveMenuItemResponse returns the id of the saved catalog item.
type SaveMenuItemResponse struct {
	ID string `json:"id"`
}

// MenuItemResponse is one catalog item on the customer-facing menu.
type MenuItemResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	BasePrice   decimal.Decimal     `json:"base_price"`
	Category    string              `json:"category"`
	Available   bool                `json:"available"`
	Options     []MenuOptionPayload `json:"options"`
}

// OrderItemVariantResponse is one chosen variant snapshot on an order line.
type OrderItemVariantResponse struct {
	OptionName      string          `json:"option_name"`
	VariantName     string          `json:"variant_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	MenuItemID          string                     `json:"menu_item_id"`
	Name                string                     `json:"name"`
	BasePrice           decimal.Decimal            `json:"base_price"`
	FinalPrice          decimal.Decimal            `json:"final_price"`
	Quantity            int                        `json:"quantity"`
	Variants            []OrderItemVariantResponse `json:"variants"`
	SpecialInstructions string                     `json:"special_instructions"`
}

// OrderResponse is one order in full detail.
type OrderResponse struct {
	ID              string              `json:"id"`
	ShopID          string              `json:"shop_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   string              `json:"customer_email"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryType    string              `json:"delivery_type"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	DeliveryFee     decimal.Decimal     `json:"delivery_fee"`
	Total           decimal.Decimal     `json:"total"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
	Status          string              `json:"status"`
	DriverID        *string             `json:"driver_id,omitempty"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderSummaryResponse is one order in the status-filtered listing.
type OrderSummaryResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	DeliveryType  string          `json:"delivery_type"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateDriverRequest adds a driver to the roster.
type CreateDriverRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateDriverResponse returns the id assigned to a new driver.
type CreateDriverResponse struct {
	ID string `json:"id"`
}

// DriverResponse is one driver on the roster.
type DriverResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

func toOrderResponse(src queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(src.Items))
	for i, item := range src.Items {
		variants := make([]OrderItemVariantResponse, len(item.Variants))
		for j, variant := range item.Variants {
			variants[j] = OrderItemVariantResponse(variant)
		}

		items[i] = OrderItemResponse{
			MenuItemID:          item.MenuItemID.String(),
			Name:                item.Name,
			BasePrice:           item.BasePrice,
			FinalPrice:          item.FinalPrice,
			Quantity:            item.Quantity,
			Variants:            variants,
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	var driverID *string
	if src.DriverID != nil {
		s := src.DriverID.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              src.ID.String(),
		ShopID:          src.ShopID,
		CustomerName:    src.CustomerName,
		CustomerPhone:   src.CustomerPhone,
		CustomerEmail:   src.CustomerEmail,
		DeliveryAddress: src.DeliveryAddress,
		DeliveryType:    src.DeliveryType,
		Items:           items,
		Subtotal:        src.Subtotal,
		DeliveryFee:     src.DeliveryFee,
		Total:           src.Total,
		PaymentMethod:   src.PaymentMethod,
		PaymentStatus:   src.PaymentStatus,
		Status:          src.Status,
		DriverID:        driverID,
		Notes:           src.Notes,
		CreatedAt:       src.CreatedAt,
		UpdatedAt:       src.UpdatedAt,
	}
}

func toMenuItemResponse(src queries.GetMenuQueryResponse) MenuItemResponse {
	options := make([]MenuOptionPayload, len(src.Options))
	for i, group := range src.Options {
		variants := make([]MenuVariantPayload, len(group.Variants))
		for j, variant := range group.Variants {
			variants[j] = MenuVariantPayload(variant)
		}

		options[i] = MenuOptionPayload{
			ID:       group.ID,
			Name:     group.Name,
			Mode:     group.Mode,
			Required: group.Required,
			Variants: variants,
		}
	}

	return MenuItemResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		Description: src.Description,
		BasePrice:   src.BasePrice,
		Category:    src.Category,
		Available:   src.Available,
		Options:     options,
	}
}
