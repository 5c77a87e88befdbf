package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSaveMenuItemCommandIsNotConstructed = errors.New(
	"SaveMenuItemCommand must be created via NewSaveMenuItemCommand constructor",
)

// SaveMenuItemCommand represents an administrative catalog edit: create a new
// item or replace an existing one wholesale. Orders already placed keep their
// variant snapshots and are unaffected by the edit.
//
// Example:
//
//	cmd, err := NewSaveMenuItemCommand(itemID, "Classic Fries", "Crispy golden fries",
//	    decimal.NewFromFloat(5.90), menu.Sides, true, options)
//	if err != nil {
//	    return fmt.Errorf("invalid catalog edit: %w", err)
//	}
//
//	handler := NewSaveMenuItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("catalog edit failed: %w", err)
//	}
type SaveMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	basePrice   decimal.Decimal
	category    menu.Category
	available   bool
	options     []menu.OptionGroup

	guard guard.ConstructorGuard
}

// NewSaveMenuItemCommand creates a catalog edit command with validation.
// Option groups arrive already constructed; the menu.Item factory re-checks
// the aggregate invariants on save.
func NewSaveMenuItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	basePrice decimal.Decimal,
	category menu.Category,
	available bool,
	options []menu.OptionGroup,
) (SaveMenuItemCommand, error) {
	cmd := SaveMenuItemCommand{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setBasePrice(basePrice),
		cmd.setCategory(category),
	); err != nil {
		return SaveMenuItemCommand{}, err
	}

	cmd.options = make([]menu.OptionGroup, len(options))
	copy(cmd.options, options)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveMenuItemCommandIsNotConstructed if validation fails.
func (c SaveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrSaveMenuItemCommandIsNotConstructed)
}

// ItemID returns the catalog item's unique identifier.
func (c SaveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item's display name.
func (c SaveMenuItemCommand) Name() string {
	return c.name
}

// Description returns the item's menu description.
func (c SaveMenuItemCommand) Description() string {
	return c.description
}

// BasePrice returns the item's price before variant adjustments.
func (c SaveMenuItemCommand) BasePrice() decimal.Decimal {
	return c.basePrice
}

// Category returns the item's menu category.
func (c SaveMenuItemCommand) Category() menu.Category {
	return c.category
}

// Available reports whether the item should be offered for sale.
func (c SaveMenuItemCommand) Available() bool {
	return c.available
}

// Options returns the item's option groups in catalog order.
func (c SaveMenuItemCommand) Options() []menu.OptionGroup {
	out := make([]menu.OptionGroup, len(c.options))
	copy(out, c.options)
	return out
}

func (c *SaveMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *SaveMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	c.name = name
	return nil
}

func (c *SaveMenuItemCommand) setBasePrice(basePrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("base price is invalid",
			fmt.Errorf("%s is negative", basePrice))
	}
	c.basePrice = basePrice
	return nil
}

func (c *SaveMenuItemCommand) setCategory(category menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	c.category = category
	return nil
}
