// Package services contains stateless domain services that operate across
// aggregates. The Pricer converts catalog items and customer selections into
// priced order lines; it owns the pricing arithmetic so that neither the
// catalog nor the order aggregate needs to know about selections.
package services
