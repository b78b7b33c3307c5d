package queries

import (
	"errors"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("date range start is after its end")
)

// ListOrdersFilter narrows an order listing. Nil fields are not applied.
// The date bounds are inclusive and compare against the placement time.
type ListOrdersFilter struct {
	Status   *order.Status
	Size     *catalog.Size
	DateFrom *time.Time
	DateTo   *time.Time
}

// ListOrdersQuery retrieves a restaurant's order history, newest first,
// optionally narrowed by status, bottle size, and placement date range.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(restaurantID, ListOrdersFilter{Status: &status})
//	if err != nil {
//	    return err
//	}
//
//	orders, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	filter       ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over a restaurant's order history.
// Filter values that are present must be valid: an unknown status or size is
// rejected here rather than silently matching nothing.
func NewListOrdersQuery(restaurantID kernel.UUID, filter ListOrdersFilter) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRestaurantID(restaurantID),
		query.setFilter(filter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the requesting restaurant.
func (q ListOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

func (q *ListOrdersQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}

	if filter.Size != nil {
		if err := filter.Size.Validate(); err != nil {
			return err
		}
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return ErrDateRangeIsInvalid
	}

	q.filter = filter
	return nil
}

// ListOrdersQueryResponse represents one order row in a listing.
type ListOrdersQueryResponse struct {
	ID        kernel.UUID
	Size      catalog.Size
	Quantity  int
	Status    order.Status
	PlacedAt  time.Time
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}
