// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The size is stored alongside the bottle reference: a catalog bottle's size
// never changes, so the copy is stable and lets orders be restored without a
// join.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null"`
	BottleID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Size         string    `gorm:"type:varchar(10);not null"`
	Quantity     int       `gorm:"not null"`
	Status       int       `gorm:"index;not null"`
	Notes        string    `gorm:"type:text"`
	PlacedAt     time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		BottleID:     aggregate.BottleID().Bytes(),
		Size:         aggregate.Size().String(),
		Quantity:     aggregate.Quantity(),
		Status:       int(aggregate.Status()),
		Notes:        aggregate.Notes(),
		PlacedAt:     aggregate.PlacedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	bottleID, err := kernel.UUIDFromBytes(dto.BottleID[:])
	if err != nil {
		return nil, err
	}

	size, err := catalog.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		bottleID,
		size,
		dto.Quantity,
		order.Status(dto.Status),
		dto.Notes,
		dto.PlacedAt,
	)
}
