package queries

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentNotificationsQueryHandler retrieves notification feed entries.
type RecentNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewRecentNotificationsQueryHandler creates a handler for feed retrieval.
func NewRecentNotificationsQueryHandler(db *gorm.DB) RecentNotificationsQueryHandler {
	return RecentNotificationsQueryHandler{db: db}
}

// Handle executes the query and returns the newest entries first.
func (h RecentNotificationsQueryHandler) Handle(
	ctx context.Context,
	query RecentNotificationsQuery,
) ([]RecentNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			"read",
			created_at
		FROM notifications
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.RestaurantID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]RecentNotificationsQueryResponse, 0, query.Limit())
	for rows.Next() {
		var id uuid.UUID
		var entry RecentNotificationsQueryResponse
		var createdAt time.Time

		if err = rows.Scan(&id, &entry.Message, &entry.Read, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
