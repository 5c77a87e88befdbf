package menu

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item represents a catalog entry. It is the aggregate root for the menu:
// a named dish with a non-negative base price, a category, an availability
// flag, and an ordered list of option groups that customize the dish.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Base price must be non-negative (variant adjustments may still drive
//     the final price below zero; that is a pricing concern, not a catalog one)
//   - Category must be valid
//   - Option group ids must be unique within the item
//
// Items are immutable reference data. The administrative editor replaces an
// item wholesale; nothing mutates a constructed Item in place.
type Item struct {
	id          kernel.UUID
	name        string
	description string
	basePrice   decimal.Decimal
	category    Category
	available   bool
	options     []OptionGroup

	isConstructed bool
}

// NewItem creates a new catalog Item with validation. This is the primary way
// to create items; RestoreItem exists for reconstruction from persistence.
func NewItem(
	id kernel.UUID,
	name string,
	description string,
	basePrice decimal.Decimal,
	category Category,
	available bool,
	options []OptionGroup,
) (*Item, error) {
	item := &Item{
		description:   description,
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setBasePrice(basePrice),
		item.setCategory(category),
		item.setOptions(options),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
// Applies the same validation as NewItem.
func RestoreItem(
	id kernel.UUID,
	name string,
	description string,
	basePrice decimal.Decimal,
	category Category,
	available bool,
	options []OptionGroup,
) (*Item, error) {
	return NewItem(id, name, description, basePrice, category, available, options)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's menu description.
func (i *Item) Description() string {
	return i.description
}

// BasePrice returns the item's price before any variant adjustments.
func (i *Item) BasePrice() decimal.Decimal {
	return i.basePrice
}

// Category returns the item's menu category.
func (i *Item) Category() Category {
	return i.category
}

// Available reports whether the item can currently be ordered.
func (i *Item) Available() bool {
	return i.available
}

// Options returns the item's option groups in catalog-declared order.
// The returned slice is a copy; the item itself is never mutated.
func (i *Item) Options() []OptionGroup {
	out := make([]OptionGroup, len(i.options))
	copy(out, i.options)
	return out
}

// FindOption looks up an option group by id.
func (i *Item) FindOption(groupID string) (OptionGroup, bool) {
	for _, g := range i.options {
		if g.ID() == groupID {
			return g, true
		}
	}
	return OptionGroup{}, false
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setBasePrice(basePrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("base price is invalid",
			fmt.Errorf("%s is negative", basePrice))
	}
	i.basePrice = basePrice
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setOptions(options []OptionGroup) error {
	seen := make(map[string]struct{}, len(options))
	for _, g := range options {
		if _, ok := seen[g.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("item options are invalid",
				fmt.Errorf("duplicate option group id %q", g.ID()))
		}
		seen[g.ID()] = struct{}{}
	}

	i.options = make([]OptionGroup, len(options))
	copy(i.options, options)
	return nil
}
