package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemVariant is a denormalized snapshot of one chosen catalog variant,
// detached from the live catalog so that later catalog edits do not
// retroactively alter historical orders.
type ItemVariant struct {
	optionName      string
	variantName     string
	priceAdjustment decimal.Decimal
}

// NewItemVariant creates a variant snapshot with validation.
func NewItemVariant(optionName string, variantName string, priceAdjustment decimal.Decimal) (ItemVariant, error) {
	if optionName == "" {
		return ItemVariant{}, errs.NewValueIsRequiredError("option name")
	}
	if variantName == "" {
		return ItemVariant{}, errs.NewValueIsRequiredError("variant name")
	}

	return ItemVariant{
		optionName:      optionName,
		variantName:     variantName,
		priceAdjustment: priceAdjustment,
	}, nil
}

// OptionName returns the name of the option group the variant came from.
func (v ItemVariant) OptionName() string {
	return v.optionName
}

// VariantName returns the display name of the chosen variant.
func (v ItemVariant) VariantName() string {
	return v.variantName
}

// PriceAdjustment returns the signed price delta the variant contributed.
func (v ItemVariant) PriceAdjustment() decimal.Decimal {
	return v.priceAdjustment
}

// Item is one priced order line: a catalog item plus its chosen variant
// snapshots and quantity. Created at checkout from cart contents and
// immutable thereafter.
type Item struct {
	menuItemID          kernel.UUID
	name                string
	basePrice           decimal.Decimal
	finalPrice          decimal.Decimal
	quantity            int
	selectedVariants    []ItemVariant
	specialInstructions string
}

// NewItem creates an order line with validation. The final price is the
// unit price including all variant adjustments; it is intentionally NOT
// clamped and may be negative when discount variants outweigh the base
// price.
func NewItem(
	menuItemID kernel.UUID,
	name string,
	basePrice decimal.Decimal,
	finalPrice decimal.Decimal,
	quantity int,
	selectedVariants []ItemVariant,
	specialInstructions string,
) (Item, error) {
	item := Item{
		basePrice:           basePrice,
		finalPrice:          finalPrice,
		specialInstructions: specialInstructions,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.selectedVariants = make([]ItemVariant, len(selectedVariants))
	copy(item.selectedVariants, selectedVariants)

	return item, nil
}

// MenuItemID returns the id of the catalog item this line was built from.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the item name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// BasePrice returns the catalog base price captured at checkout.
func (i Item) BasePrice() decimal.Decimal {
	return i.basePrice
}

// FinalPrice returns the unit price including all variant adjustments.
func (i Item) FinalPrice() decimal.Decimal {
	return i.finalPrice
}

// Quantity returns the ordered quantity (always positive).
func (i Item) Quantity() int {
	return i.quantity
}

// SelectedVariants returns the variant snapshots in display order.
func (i Item) SelectedVariants() []ItemVariant {
	out := make([]ItemVariant, len(i.selectedVariants))
	copy(out, i.selectedVariants)
	return out
}

// SpecialInstructions returns the customer's free-text instructions.
func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}

// LineTotal returns finalPrice multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.finalPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("order item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}
