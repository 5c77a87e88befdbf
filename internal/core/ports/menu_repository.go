package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for catalog items.
type MenuRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, item *menu.Item) error

	// Update persists changes to an existing catalog item.
	Update(ctx context.Context, item *menu.Item) error

	// Get retrieves a catalog item by its unique identifier.
	// Returns the complete item with its option groups and variants.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAllAvailable retrieves every item currently offered for sale,
	// grouped by category order then name.
	GetAllAvailable(ctx context.Context) ([]*menu.Item, error)
}
