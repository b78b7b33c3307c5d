// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant account persistence.
package restaurantrepo

import (
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant accounts.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(150);not null"`
	Address string    `gorm:"type:text"`
	Phone   string    `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for restaurant rows.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, dto.Phone)
}
