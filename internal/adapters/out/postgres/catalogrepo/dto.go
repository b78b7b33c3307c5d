// Package catalogrepo provides data transfer objects and mapping functions
// for catalog bottle persistence.
package catalogrepo

import (
	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BottleDTO represents the database structure for persisting catalog bottles.
// The unique index on size enforces one price entry per bottle size.
type BottleDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Size  string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for catalog rows.
func (BottleDTO) TableName() string {
	return "bottles"
}

func fromDomain(bottle *catalog.Bottle) BottleDTO {
	return BottleDTO{
		ID:    bottle.ID().Bytes(),
		Size:  bottle.Size().String(),
		Price: bottle.Price().Amount(),
	}
}

func toDomain(dto BottleDTO) (*catalog.Bottle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	size, err := catalog.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreBottle(id, size, price)
}
