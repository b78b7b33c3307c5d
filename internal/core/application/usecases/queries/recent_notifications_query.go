package queries

import (
	"errors"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var ErrRecentNotificationsQueryIsNotConstructed = errors.New(
	"RecentNotificationsQuery must be created via NewRecentNotificationsQuery constructor",
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// RecentNotificationsQuery retrieves a restaurant's notification feed,
// newest first, bounded by a limit.
type RecentNotificationsQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	limit        int

	guard guard.ConstructorGuard
}

// NewRecentNotificationsQuery creates a query over a restaurant's feed.
// A non-positive limit falls back to the default of 20; limits above 100 are
// rejected.
func NewRecentNotificationsQuery(restaurantID kernel.UUID, limit int) (RecentNotificationsQuery, error) {
	query := RecentNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRestaurantID(restaurantID),
		query.setLimit(limit),
	); err != nil {
		return RecentNotificationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrRecentNotificationsQueryIsNotConstructed if validation fails.
func (q RecentNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrRecentNotificationsQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the requesting restaurant.
func (q RecentNotificationsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Limit returns the maximum number of entries to return.
func (q RecentNotificationsQuery) Limit() int {
	return q.limit
}

func (q *RecentNotificationsQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

func (q *RecentNotificationsQuery) setLimit(limit int) error {
	if limit <= 0 {
		q.limit = defaultNotificationLimit
		return nil
	}

	if limit > maxNotificationLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxNotificationLimit)
	}

	q.limit = limit
	return nil
}

// RecentNotificationsQueryResponse represents one notification feed entry.
type RecentNotificationsQueryResponse struct {
	ID        kernel.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
