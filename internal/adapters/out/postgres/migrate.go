package postgres

import (
	"fmt"

	"beverage/internal/adapters/out/postgres/catalogrepo"
	"beverage/internal/adapters/out/postgres/deliveryrepo"
	"beverage/internal/adapters/out/postgres/notificationrepo"
	"beverage/internal/adapters/out/postgres/orderrepo"
	"beverage/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all aggregates and adds
// the referential constraints the repositories rely on for conflict and
// not-found translation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&catalogrepo.BottleDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&deliveryrepo.PersonDTO{},
		&deliveryrepo.AssignmentDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	constraints := []struct {
		name string
		sql  string
	}{
		{
			"fk_orders_restaurant",
			"ALTER TABLE orders ADD CONSTRAINT fk_orders_restaurant " +
				"FOREIGN KEY (restaurant_id) REFERENCES restaurants (id) ON DELETE CASCADE",
		},
		{
			"fk_orders_bottle",
			"ALTER TABLE orders ADD CONSTRAINT fk_orders_bottle " +
				"FOREIGN KEY (bottle_id) REFERENCES bottles (id) ON DELETE RESTRICT",
		},
		{
			"fk_notifications_restaurant",
			"ALTER TABLE notifications ADD CONSTRAINT fk_notifications_restaurant " +
				"FOREIGN KEY (restaurant_id) REFERENCES restaurants (id) ON DELETE CASCADE",
		},
		{
			"fk_assignments_order",
			"ALTER TABLE delivery_assignments ADD CONSTRAINT fk_assignments_order " +
				"FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE",
		},
		{
			"fk_assignments_person",
			"ALTER TABLE delivery_assignments ADD CONSTRAINT fk_assignments_person " +
				"FOREIGN KEY (person_id) REFERENCES delivery_people (id) ON DELETE RESTRICT",
		},
	}

	for _, c := range constraints {
		var exists bool
		err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", c.name,
		).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := db.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}

	return nil
}
