package http

import (
	"time"

	"beverage/internal/core/application/usecases/queries"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRestaurantRequest is the body for POST /api/v1/restaurants.
type RegisterRestaurantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// RegisterRestaurantResponse carries the identifier of a new restaurant.
type RegisterRestaurantResponse struct {
	ID string `json:"id"`
}

// UpdateProfileRequest is the body for PUT /api/v1/restaurants/profile.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SetPriceRequest is the body for PUT /api/v1/catalog/:size.
type SetPriceRequest struct {
	Price string `json:"price"`
}

// CatalogEntry is one row of GET /api/v1/catalog.
type CatalogEntry struct {
	Size            string `json:"size"`
	Price           string `json:"price"`
	MinimumQuantity int    `json:"minimum_quantity"`
}

// PlaceOrderRequest is the body for POST /api/v1/orders.
type PlaceOrderRequest struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// PlaceOrderResponse carries the identifier of a new order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// Order is the JSON shape of one order in reads.
type Order struct {
	ID        string    `json:"id"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	PlacedAt  time.Time `json:"placed_at"`
	UnitPrice string    `json:"unit_price"`
	Subtotal  string    `json:"subtotal"`
}

func orderFromGetResponse(r queries.GetOrderQueryResponse) Order {
	return Order{
		ID:        r.ID.String(),
		Size:      r.Size.String(),
		Quantity:  r.Quantity,
		Status:    r.Status.String(),
		Notes:     r.Notes,
		PlacedAt:  r.PlacedAt,
		UnitPrice: r.UnitPrice.String(),
		Subtotal:  r.Subtotal.String(),
	}
}

func orderFromListResponse(r queries.ListOrdersQueryResponse) Order {
	return Order{
		ID:        r.ID.String(),
		Size:      r.Size.String(),
		Quantity:  r.Quantity,
		Status:    r.Status.String(),
		PlacedAt:  r.PlacedAt,
		UnitPrice: r.UnitPrice.String(),
		Subtotal:  r.Subtotal.String(),
	}
}

// TransitionRequest is the body for POST /api/v1/orders/:id/transition.
type TransitionRequest struct {
	Status string `json:"status"`
}

// BulkTransitionRequest is the body for POST /api/v1/orders/transition.
type BulkTransitionRequest struct {
	OrderIDs []string `json:"order_ids"`
	Status   string   `json:"status"`
}

// BulkTransitionResult is one row of the bulk transition response.
type BulkTransitionResult struct {
	OrderID string `json:"order_id"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// ForceStatusRequest is the body for PUT /api/v1/orders/:id/status.
type ForceStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// AssignDeliveryRequest is the body for POST /api/v1/orders/:id/assignment.
type AssignDeliveryRequest struct {
	PersonID string `json:"person_id"`
}

// CreateDeliveryPersonRequest is the body for POST /api/v1/delivery-people.
type CreateDeliveryPersonRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateDeliveryPersonResponse carries the identifier of a new delivery person.
type CreateDeliveryPersonResponse struct {
	ID string `json:"id"`
}

// SetActiveRequest is the body for PUT /api/v1/delivery-people/:id/active.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// Notification is one row of GET /api/v1/notifications.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Dashboard is the response of GET /api/v1/dashboard.
type Dashboard struct {
	TotalOrders         int              `json:"total_orders"`
	DeliveredOrders     int              `json:"delivered_orders"`
	OpenOrders          int              `json:"open_orders"`
	TotalSpent          string           `json:"total_spent"`
	RecentOrders        []DashboardOrder `json:"recent_orders"`
	UnreadNotifications int              `json:"unread_notifications"`
}

// DashboardOrder is one row of the dashboard's recent-orders list.
type DashboardOrder struct {
	ID       string    `json:"id"`
	Size     string    `json:"size"`
	Quantity int       `json:"quantity"`
	Status   string    `json:"status"`
	PlacedAt time.Time `json:"placed_at"`
}

func dashboardOrdersFromResponse(rows []queries.DashboardRecentOrder) []DashboardOrder {
	result := make([]DashboardOrder, len(rows))
	for i, row := range rows {
		result[i] = DashboardOrder{
			ID:       row.ID.String(),
			Size:     row.Size.String(),
			Quantity: row.Quantity,
			Status:   row.Status.String(),
			PlacedAt: row.PlacedAt,
		}
	}
	return result
}
