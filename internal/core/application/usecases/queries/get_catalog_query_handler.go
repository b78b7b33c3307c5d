package queries

import (
	"context"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler retrieves catalog entries straight from the
// database. Uses direct SQL for read performance in the CQRS pattern.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog retrieval.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query and returns the catalog ordered by size.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			size,
			price
		FROM bottles
		ORDER BY size
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sizeStr string
		var price decimal.Decimal

		if err = rows.Scan(&sizeStr, &price); err != nil {
			return nil, err
		}

		size, sizeErr := catalog.ParseSize(sizeStr)
		if sizeErr != nil {
			return nil, sizeErr
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		entries = append(entries, GetCatalogQueryResponse{
			Size:            size,
			Price:           money,
			MinimumQuantity: catalog.MinimumQuantity(size),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
