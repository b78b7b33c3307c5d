// Package ports defines repository and unit-of-work interfaces for the
// beverage ordering domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while holding a row-level lock for the
	// duration of the surrounding transaction. Status transitions use this to
	// re-validate against the latest persisted status immediately before the
	// write, closing the lost-update race between concurrent admin actions.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOwned retrieves an order only when it belongs to the given
	// restaurant. Missing and foreign orders are indistinguishable to the
	// caller: both report object-not-found, so queries never leak
	// cross-restaurant data.
	GetOwned(ctx context.Context, id, restaurantID kernel.UUID) (*order.Order, error)
}
