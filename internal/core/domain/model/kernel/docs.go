// Package kernel provides shared value objects used across the storefront domain.
// It currently contains the UUID value object, which wraps github.com/google/uuid
// with validation and equality semantics suitable for entity identifiers.
package kernel
