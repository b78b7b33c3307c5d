package ports

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// append-only notification feed.
type NotificationRepository interface {
	// Add appends a new entry to a restaurant's feed. Fails with
	// object-not-found when the restaurant does not exist.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetOwned retrieves a notification only when it belongs to the given
	// restaurant.
	GetOwned(ctx context.Context, id, restaurantID kernel.UUID) (*notification.Notification, error)

	// Update persists the read flag; nothing else about an entry ever changes.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// RemoveReadOlderThan deletes read entries created before the cutoff
	// across all restaurants and reports how many were deleted. Unread
	// entries are never pruned.
	RemoveReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
