package services

import (
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineQuote is the result of pricing one catalog item against a selection:
// the unit price including all variant adjustments, the line total for the
// requested quantity, and the variant snapshots in display order.
type LineQuote struct {
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Quantity  int
	Variants  []order.ItemVariant
}

// Pricer is a domain service that converts a catalog item, a selection, and
// a quantity into a priced line. It is a pure computation: it holds no state,
// performs no I/O, and never mutates its inputs, so identical inputs always
// yield identical quotes.
//
// Pricing rules:
//   - The unit price starts at the item's base price and accumulates the
//     price adjustment of every resolved variant.
//   - Option groups are processed in catalog-declared order. Within a
//     Multiple group, variants contribute in selection insertion order.
//   - Selections referencing a group or variant absent from the item are
//     dropped silently; they are stale references from an edited catalog,
//     not errors worth failing a checkout over.
//   - Negative totals arising from discount variants are NOT clamped. The
//     final price is whatever the arithmetic yields; flagging suspicious
//     catalogs is a concern for the administrative editor, not the pricer.
//   - Missing selections for required Single groups are not defaulted here.
//     The checkout command validates requiredness before pricing; presenting
//     a pre-selected default is a UI concern.
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// PriceLineItem prices one order line.
//
// Returns an error only for structurally invalid input: an unconstructed
// item or a quantity below 1. The selection itself can never fail pricing.
func (p Pricer) PriceLineItem(item *menu.Item, selection *menu.Selection, quantity int) (LineQuote, error) {
	if err := item.Validate(); err != nil {
		return LineQuote{}, err
	}

	if quantity < 1 {
		return LineQuote{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	unitPrice := item.BasePrice()
	variants := make([]order.ItemVariant, 0)

	if selection != nil {
		for _, group := range item.Options() {
			for _, variant := range p.resolveGroup(group, selection) {
				unitPrice = unitPrice.Add(variant.PriceAdjustment())

				snapshot, err := order.NewItemVariant(group.Name(), variant.Name(), variant.PriceAdjustment())
				if err != nil {
					return LineQuote{}, err
				}
				variants = append(variants, snapshot)
			}
		}
	}

	return LineQuote{
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Quantity:  quantity,
		Variants:  variants,
	}, nil
}

// ValidateSelection checks that every required Single group on the item has
// a resolvable choice in the selection. It is invoked by the checkout
// command before pricing; the pricer itself stays forgiving.
func (p Pricer) ValidateSelection(item *menu.Item, selection *menu.Selection) error {
	for _, group := range item.Options() {
		if group.Mode() != menu.Single || !group.Required() {
			continue
		}

		chosen, ok := "", false
		if selection != nil {
			chosen, ok = selection.SingleChoice(group.ID())
		}
		if !ok {
			return errs.NewValueIsRequiredError("selection for option " + group.Name())
		}
		if _, found := group.FindVariant(chosen); !found {
			return errs.NewValueIsRequiredError("selection for option " + group.Name())
		}
	}
	return nil
}

// resolveGroup returns the variants the selection picks from one group,
// dropping unknown references.
func (p Pricer) resolveGroup(group menu.OptionGroup, selection *menu.Selection) []menu.Variant {
	switch group.Mode() {
	case menu.Single:
		variantID, ok := selection.SingleChoice(group.ID())
		if !ok {
			return nil
		}
		variant, found := group.FindVariant(variantID)
		if !found {
			return nil
		}
		return []menu.Variant{variant}

	case menu.Multiple:
		var resolved []menu.Variant
		for _, variantID := range selection.MultiChoices(group.ID()) {
			if variant, found := group.FindVariant(variantID); found {
				resolved = append(resolved, variant)
			}
		}
		return resolved

	default:
		return nil
	}
}
