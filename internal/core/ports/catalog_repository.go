package ports

import (
	"context"

	"beverage/internal/core/domain/model/catalog"
)

// CatalogRepository defines the persistence contract for catalog entries.
// Bottles are reference data keyed by their unique size; the store enforces
// the uniqueness and protects referenced bottles from deletion.
type CatalogRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, bottle *catalog.Bottle) error

	// Update persists a changed catalog entry (price changes).
	Update(ctx context.Context, bottle *catalog.Bottle) error

	// GetBySize retrieves the entry for a size.
	GetBySize(ctx context.Context, size catalog.Size) (*catalog.Bottle, error)

	// GetAll retrieves every catalog entry in size order.
	GetAll(ctx context.Context) ([]*catalog.Bottle, error)

	// Remove deletes a catalog entry. Fails with a conflict while any order
	// references the bottle.
	Remove(ctx context.Context, size catalog.Size) error
}
