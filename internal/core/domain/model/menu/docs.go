// Package menu provides domain entities for the storefront catalog.
//
// The package includes:
//   - Item: The aggregate root for a catalog entry with its base price and option groups
//   - OptionGroup: A named set of mutually-grouped choices (e.g. "Size") attached to an item
//   - Variant: One concrete choice within an option group, carrying a price delta
//   - Selection: A customer's transient choice of variants for one item, preserving
//     insertion order for multiple-choice groups
//   - Category and SelectionMode enumerations
//
// Key business rules:
//   - Items must have a name, a non-negative base price, and a valid category
//   - Option groups must carry at least one variant
//   - Variant price adjustments are unbounded and may be negative; the catalog
//     never clamps them
//
// Catalog entries are immutable reference data: they are created at catalog-load
// time and replaced wholesale by the administrative editor. Pricing never mutates
// them.
package menu
