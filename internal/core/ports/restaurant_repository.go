package ports

import (
	"context"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant profiles.
type RestaurantRepository interface {
	// Add persists a new restaurant profile.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists profile changes.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
