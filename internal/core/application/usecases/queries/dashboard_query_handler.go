package queries

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recentOrdersLimit caps the dashboard's latest-orders list.
const recentOrdersLimit = 5

// DashboardQueryHandler computes a restaurant's summary figures: one
// aggregate query over orders joined with the catalog, one over the
// notification log, and the latest orders for the dashboard list.
type DashboardQueryHandler struct {
	db *gorm.DB
}

// NewDashboardQueryHandler creates a handler for dashboard summaries.
func NewDashboardQueryHandler(db *gorm.DB) DashboardQueryHandler {
	return DashboardQueryHandler{db: db}
}

// Handle executes the query. A restaurant with no orders gets zero counts,
// not an error.
func (h DashboardQueryHandler) Handle(
	ctx context.Context,
	query DashboardQuery,
) (DashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardQueryResponse{}, err
	}

	var totalOrders, deliveredOrders, openOrders int
	var totalSpent decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE o.status = ?),
			COUNT(*) FILTER (WHERE o.status NOT IN (?, ?)),
			COALESCE(SUM(o.quantity * b.price) FILTER (WHERE o.status <> ?), 0)
		FROM orders o
		JOIN bottles b ON b.id = o.bottle_id
		WHERE o.restaurant_id = ?
	`,
		int(order.Delivered),
		int(order.Delivered), int(order.Cancelled),
		int(order.Cancelled),
		query.RestaurantID().Bytes(),
	).Row()

	if err := row.Scan(&totalOrders, &deliveredOrders, &openOrders, &totalSpent); err != nil {
		return DashboardQueryResponse{}, err
	}

	spent, err := kernel.NewMoney(totalSpent)
	if err != nil {
		return DashboardQueryResponse{}, err
	}

	recentOrders, err := h.recentOrders(ctx, query.RestaurantID())
	if err != nil {
		return DashboardQueryResponse{}, err
	}

	var unread int
	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE restaurant_id = ? AND "read" = false
	`, query.RestaurantID().Bytes()).Row()

	if err = row.Scan(&unread); err != nil {
		return DashboardQueryResponse{}, err
	}

	return DashboardQueryResponse{
		TotalOrders:         totalOrders,
		DeliveredOrders:     deliveredOrders,
		OpenOrders:          openOrders,
		TotalSpent:          spent,
		RecentOrders:        recentOrders,
		UnreadNotifications: unread,
	}, nil
}

func (h DashboardQueryHandler) recentOrders(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]DashboardRecentOrder, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.size, o.quantity, o.status, o.placed_at
		FROM orders o
		WHERE o.restaurant_id = ?
		ORDER BY o.placed_at DESC
		LIMIT ?
	`, restaurantID.Bytes(), recentOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]DashboardRecentOrder, 0, recentOrdersLimit)
	for rows.Next() {
		var id uuid.UUID
		var sizeStr string
		var quantity, status int
		var placedAt time.Time

		if err = rows.Scan(&id, &sizeStr, &quantity, &status, &placedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		size, sizeErr := catalog.ParseSize(sizeStr)
		if sizeErr != nil {
			return nil, sizeErr
		}

		recent = append(recent, DashboardRecentOrder{
			ID:       orderID,
			Size:     size,
			Quantity: quantity,
			Status:   order.Status(status),
			PlacedAt: placedAt,
		})
	}

	return recent, rows.Err()
}
