// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
// The composite index supports the newest-first feed per restaurant.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index:idx_notifications_feed,priority:1;not null"`
	Message      string    `gorm:"type:text;not null"`
	Read         bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"index:idx_notifications_feed,priority:2,sort:desc;not null"`
}

// TableName specifies the database table name for notification rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Message:      aggregate.Message(),
		Read:         aggregate.Read(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, restaurantID, dto.Message, dto.CreatedAt, dto.Read)
}
