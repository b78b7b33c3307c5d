package queries

import (
	"errors"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order for the restaurant that placed it.
// The restaurant ID scopes the lookup: another restaurant's order is
// reported as not found. The response carries the subtotal computed from
// the catalog's current price, never a stored figure.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a restaurant's order.
func NewGetOrderQuery(orderID, restaurantID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRestaurantID(restaurantID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RestaurantID returns the identifier of the requesting restaurant.
func (q GetOrderQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

// GetOrderQueryResponse represents one order with its price breakdown.
type GetOrderQueryResponse struct {
	ID        kernel.UUID
	Size      catalog.Size
	Quantity  int
	Status    order.Status
	Notes     string
	PlacedAt  time.Time
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}
