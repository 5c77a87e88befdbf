package ports

import (
	"context"

	"storefront/internal/core/domain/model/driver"
	"storefront/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for delivery drivers.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllActive retrieves every driver on the roster.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)
}
