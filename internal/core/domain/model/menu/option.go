package menu

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SelectionMode determines how many variants may be chosen from an option group.
type SelectionMode int

const (
	// UnknownMode represents an invalid or undefined selection mode.
	UnknownMode SelectionMode = iota

	// Single allows exactly one variant to be chosen (radio-button semantics).
	Single

	// Multiple allows any number of variants to be chosen (checkbox semantics).
	Multiple
)

func getSelectionModeStrings() map[SelectionMode]string {
	return map[SelectionMode]string{
		UnknownMode: "unknown",
		Single:      "single",
		Multiple:    "multiple",
	}
}

// Validate checks if the SelectionMode value is valid.
func (m SelectionMode) Validate() error {
	if m != Single && m != Multiple {
		return errs.NewValueIsInvalidErrorWithCause("selection mode is invalid",
			fmt.Errorf("%d is not a valid selection mode", m))
	}
	return nil
}

// String returns the lowercase name of the mode, as used on the wire
// and in the database. Returns "unknown" for invalid values.
func (m SelectionMode) String() string {
	if str, ok := getSelectionModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// SelectionModeFromString parses a selection mode from its wire representation.
func SelectionModeFromString(s string) (SelectionMode, error) {
	switch s {
	case "single":
		return Single, nil
	case "multiple":
		return Multiple, nil
	default:
		return UnknownMode, errs.NewValueIsInvalidErrorWithCause("selection mode is invalid",
			fmt.Errorf("%q is not a valid selection mode", s))
	}
}

// Variant is one concrete choice within an option group, carrying a signed
// price delta relative to the item's base price. The adjustment is unbounded
// and may be negative (e.g. a "single patty" discount); combined adjustments
// are never clamped.
type Variant struct {
	id              string
	name            string
	priceAdjustment decimal.Decimal
}

// NewVariant creates a Variant with validation.
// The id and name must be non-empty; the price adjustment is unrestricted.
func NewVariant(id string, name string, priceAdjustment decimal.Decimal) (Variant, error) {
	if id == "" {
		return Variant{}, errs.NewValueIsRequiredError("variant id")
	}
	if name == "" {
		return Variant{}, errs.NewValueIsRequiredError("variant name")
	}

	return Variant{
		id:              id,
		name:            name,
		priceAdjustment: priceAdjustment,
	}, nil
}

// ID returns the variant's catalog identifier.
func (v Variant) ID() string {
	return v.id
}

// Name returns the variant's display name.
func (v Variant) Name() string {
	return v.name
}

// PriceAdjustment returns the signed price delta for this variant.
func (v Variant) PriceAdjustment() decimal.Decimal {
	return v.priceAdjustment
}

// OptionGroup is a named set of variants attached to a catalog item,
// such as "Size" or "Extra Toppings". The selection mode determines
// whether one or many variants may be chosen.
//
// When the group is required and the mode is Single, exactly one variant
// must be selected at checkout; required has no hard effect on Multiple
// groups beyond validation messaging in the UI layer.
type OptionGroup struct {
	id       string
	name     string
	mode     SelectionMode
	required bool
	variants []Variant
}

// NewOptionGroup creates an OptionGroup with validation.
// The group must have an id, a name, a valid mode, and at least one variant.
func NewOptionGroup(id string, name string, mode SelectionMode, required bool, variants []Variant) (OptionGroup, error) {
	group := OptionGroup{
		required: required,
	}

	if err := errors.Join(
		group.setID(id),
		group.setName(name),
		group.setMode(mode),
		group.setVariants(variants),
	); err != nil {
		return OptionGroup{}, err
	}

	return group, nil
}

// ID returns the group's catalog identifier.
func (g OptionGroup) ID() string {
	return g.id
}

// Name returns the group's display name.
func (g OptionGroup) Name() string {
	return g.name
}

// Mode returns the group's selection mode.
func (g OptionGroup) Mode() SelectionMode {
	return g.mode
}

// Required reports whether the group demands a selection at checkout.
func (g OptionGroup) Required() bool {
	return g.required
}

// Variants returns the group's variants in catalog-declared order.
func (g OptionGroup) Variants() []Variant {
	out := make([]Variant, len(g.variants))
	copy(out, g.variants)
	return out
}

// FindVariant looks up a variant by id within this group.
func (g OptionGroup) FindVariant(variantID string) (Variant, bool) {
	for _, v := range g.variants {
		if v.id == variantID {
			return v, true
		}
	}
	return Variant{}, false
}

func (g *OptionGroup) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("option group id")
	}
	g.id = id
	return nil
}

func (g *OptionGroup) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("option group name")
	}
	g.name = name
	return nil
}

func (g *OptionGroup) setMode(mode SelectionMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	g.mode = mode
	return nil
}

func (g *OptionGroup) setVariants(variants []Variant) error {
	if len(variants) == 0 {
		return errs.NewValueIsRequiredError("option group variants")
	}
	g.variants = make([]Variant, len(variants))
	copy(g.variants, variants)
	return nil
}
