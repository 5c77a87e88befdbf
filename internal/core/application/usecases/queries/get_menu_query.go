// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the catalog as shown to customers: every available
// item with its option groups and variants.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve menu: %w", err)
//	}
//
//	for _, item := range items {
//	    fmt.Printf("%s (%s): %s\n", item.Name, item.Category, item.BasePrice)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the customer-facing menu.
// This is a parameterless query that fetches all available items.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuVariantResponse represents one selectable variant in the read model.
type MenuVariantResponse struct {
	ID              string
	Name            string
	PriceAdjustment decimal.Decimal
}

// MenuOptionResponse represents one option group in the read model.
type MenuOptionResponse struct {
	ID       string
	Name     string
	Mode     string
	Required bool
	Variants []MenuVariantResponse
}

// GetMenuQueryResponse represents one catalog item in the read model.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    string
	Available   bool
	Options     []MenuOptionResponse
}
