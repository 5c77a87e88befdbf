// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and their variant snapshots live in a JSONB column: they are
// immutable after checkout and always loaded with the order, so a child table
// would buy nothing but joins.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID          string     `gorm:"index"`
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	DeliveryType    string
	Items           ItemsJSON       `gorm:"type:jsonb"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod   string
	PaymentStatus   string
	Status          string     `gorm:"index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	Notes           string
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"index;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemVariantDTO is the stored form of one chosen variant snapshot.
type ItemVariantDTO struct {
	OptionName      string          `json:"option_name"`
	VariantName     string          `json:"variant_name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OrderItemDTO is the stored form of one priced order line.
type OrderItemDTO struct {
	MenuItemID          uuid.UUID        `json:"menu_item_id"`
	Name                string           `json:"name"`
	BasePrice           decimal.Decimal  `json:"base_price"`
	FinalPrice          decimal.Decimal  `json:"final_price"`
	Quantity            int              `json:"quantity"`
	SpecialInstructions string           `json:"special_instructions"`
	Variants            []ItemVariantDTO `json:"variants"`
}

// ItemsJSON stores order lines as a JSONB column.
type ItemsJSON []OrderItemDTO

// Value implements driver.Valuer for JSONB persistence.
func (j ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (j *ItemsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported type %T for ItemsJSON", value)
	}
}

// GormDataType tells GORM which column type to migrate.
func (ItemsJSON) GormDataType() string {
	return "jsonb"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		variants := make([]ItemVariantDTO, 0, len(item.SelectedVariants()))
		for _, variant := range item.SelectedVariants() {
			variants = append(variants, ItemVariantDTO{
				OptionName:      variant.OptionName(),
				VariantName:     variant.VariantName(),
				PriceAdjustment: variant.PriceAdjustment(),
			})
		}

		items = append(items, OrderItemDTO{
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			BasePrice:           item.BasePrice(),
			FinalPrice:          item.FinalPrice(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Variants:            variants,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ShopID:          aggregate.ShopID(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		CustomerEmail:   aggregate.CustomerEmail(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryType:    aggregate.DeliveryType().String(),
		Items:           items,
		Subtotal:        aggregate.Subtotal(),
		DeliveryFee:     aggregate.DeliveryFee(),
		Total:           aggregate.Total(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		Status:          aggregate.Status().String(),
		DriverID:        driverID,
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, trusting the
// stored monetary figures.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	deliveryType, err := order.DeliveryTypeFromString(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(line.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		variants := make([]order.ItemVariant, 0, len(line.Variants))
		for _, variant := range line.Variants {
			restored, vErr := order.NewItemVariant(variant.OptionName, variant.VariantName, variant.PriceAdjustment)
			if vErr != nil {
				return nil, vErr
			}
			variants = append(variants, restored)
		}

		item, itemErr := order.NewItem(menuItemID, line.Name, line.BasePrice, line.FinalPrice,
			line.Quantity, variants, line.SpecialInstructions)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.ShopID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		dto.DeliveryAddress,
		deliveryType,
		items,
		dto.Subtotal,
		dto.DeliveryFee,
		dto.Total,
		paymentMethod,
		paymentStatus,
		status,
		driverID,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
