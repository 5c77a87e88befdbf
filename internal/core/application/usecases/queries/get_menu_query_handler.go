package queries

import (
	"context"
	"encoding/json"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// optionsColumn mirrors the JSONB shape of the menu_items.options column.
type optionsColumn []struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	Required bool   `json:"required"`
	Variants []struct {
		ID              string          `json:"id"`
		Name            string          `json:"name"`
		PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	} `json:"variants"`
}

// GetMenuQueryHandler retrieves the customer-facing menu from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve all available catalog items.
// Returns items sorted by category then name, with option groups decoded
// from their stored JSON representation.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			base_price,
			category,
			available,
			options
		FROM menu_items
		WHERE available
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetMenuQueryResponse
		var id uuid.UUID
		var rawOptions []byte

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&item.BasePrice,
			&item.Category,
			&item.Available,
			&rawOptions,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		item.Options, err = decodeOptions(rawOptions)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// decodeOptions converts the stored JSON option groups into read model types.
func decodeOptions(raw []byte) ([]MenuOptionResponse, error) {
	options := make([]MenuOptionResponse, 0)
	if len(raw) == 0 {
		return options, nil
	}

	var column optionsColumn
	if err := json.Unmarshal(raw, &column); err != nil {
		return nil, err
	}

	for _, group := range column {
		option := MenuOptionResponse{
			ID:       group.ID,
			Name:     group.Name,
			Mode:     group.Mode,
			Required: group.Required,
			Variants: make([]MenuVariantResponse, 0, len(group.Variants)),
		}
		for _, variant := range group.Variants {
			option.Variants = append(option.Variants, MenuVariantResponse(variant))
		}
		options = append(options, option)
	}

	return options, nil
}
