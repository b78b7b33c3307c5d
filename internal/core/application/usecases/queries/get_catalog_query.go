// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the full bottle catalog: every listed size with
// its current unit price and minimum order quantity.
//
// Example:
//
//	query := NewGetCatalogQuery()
//	handler := NewGetCatalogQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    fmt.Printf("%s: %s (min %d)\n", e.Size, e.Price, e.MinimumQuantity)
//	}
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse represents one catalog entry.
type GetCatalogQueryResponse struct {
	Size            catalog.Size
	Price           kernel.Money
	MinimumQuantity int
}
