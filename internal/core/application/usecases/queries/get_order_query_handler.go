package queries

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order joined with the catalog for
// its current unit price.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist or belongs to another restaurant.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.size,
			o.quantity,
			o.status,
			o.notes,
			o.placed_at,
			b.price
		FROM orders o
		JOIN bottles b ON b.id = o.bottle_id
		WHERE o.id = ? AND o.restaurant_id = ?
	`, query.OrderID().Bytes(), query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var id uuid.UUID
	var sizeStr string
	var quantity, status int
	var notes string
	var placedAt time.Time
	var price decimal.Decimal

	if err = rows.Scan(&id, &sizeStr, &quantity, &status, &notes, &placedAt, &price); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	size, err := catalog.ParseSize(sizeStr)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	unitPrice, err := kernel.NewMoney(price)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:        orderID,
		Size:      size,
		Quantity:  quantity,
		Status:    order.Status(status),
		Notes:     notes,
		PlacedAt:  placedAt,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.MulInt(quantity),
	}, nil
}
