package menu

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Category classifies a catalog item for menu display and reporting.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	Burgers
	Sides
	Drinks
	Desserts
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "unknown",
		Burgers:         "burgers",
		Sides:           "sides",
		Drinks:          "drinks",
		Desserts:        "desserts",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		Burgers:  "burgers",
		Sides:    "sides",
		Drinks:   "drinks",
		Desserts: "desserts",
	}
}

// Validate checks if the Category value is valid.
// UnknownCategory (0) and any other values are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the lowercase name of the category, as used on the wire
// and in the database. Returns "unknown" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// CategoryFromString parses a category from its wire representation.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause("category is invalid",
		fmt.Errorf("%q is not a valid category", s))
}
