package queries

import (
	"errors"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var ErrDashboardQueryIsNotConstructed = errors.New(
	"DashboardQuery must be created via NewDashboardQuery constructor",
)

// DashboardQuery retrieves a restaurant's summary figures: order counts by
// lifecycle position, total spend, the latest orders, and unread
// notification count.
type DashboardQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDashboardQuery creates a query for a restaurant's dashboard summary.
func NewDashboardQuery(restaurantID kernel.UUID) (DashboardQuery, error) {
	query := DashboardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return DashboardQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrDashboardQueryIsNotConstructed if validation fails.
func (q DashboardQuery) Validate() error {
	return q.guard.Validate(ErrDashboardQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the requesting restaurant.
func (q DashboardQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *DashboardQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

// DashboardQueryResponse represents a restaurant's summary figures.
// TotalSpent covers every non-cancelled order at the catalog's current
// prices; OpenOrders counts orders that are neither delivered nor cancelled.
// RecentOrders holds the five most recently placed orders, newest first.
type DashboardQueryResponse struct {
	TotalOrders         int
	DeliveredOrders     int
	OpenOrders          int
	TotalSpent          kernel.Money
	RecentOrders        []DashboardRecentOrder
	UnreadNotifications int
}

// DashboardRecentOrder is one row of the dashboard's latest-orders list.
type DashboardRecentOrder struct {
	ID       kernel.UUID
	Size     catalog.Size
	Quantity int
	Status   order.Status
	PlacedAt time.Time
}
