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

// ListOrdersQueryHandler retrieves a restaurant's order history with the
// catalog joined in for current prices.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.size,
			o.quantity,
			o.status,
			o.placed_at,
			b.price
		FROM orders o
		JOIN bottles b ON b.id = o.bottle_id
		WHERE o.restaurant_id = ?`
	args := []any{query.RestaurantID().Bytes()}

	filter := query.Filter()
	if filter.Status != nil {
		sql += " AND o.status = ?"
		args = append(args, int(*filter.Status))
	}
	if filter.Size != nil {
		sql += " AND o.size = ?"
		args = append(args, filter.Size.String())
	}
	if filter.DateFrom != nil {
		sql += " AND o.placed_at >= ?"
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		sql += " AND o.placed_at <= ?"
		args = append(args, *filter.DateTo)
	}

	sql += " ORDER BY o.placed_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var sizeStr string
		var quantity, status int
		var placedAt time.Time
		var price decimal.Decimal

		if err = rows.Scan(&id, &sizeStr, &quantity, &status, &placedAt, &price); err != nil {
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

		unitPrice, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, ListOrdersQueryResponse{
			ID:        orderID,
			Size:      size,
			Quantity:  quantity,
			Status:    order.Status(status),
			PlacedAt:  placedAt,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice.MulInt(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
