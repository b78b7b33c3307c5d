package ports

import (
	"context"

	"beverage/internal/core/domain/model/delivery"
	"beverage/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery personnel
// and their order assignments.
type DeliveryRepository interface {
	// AddPerson persists a new delivery person.
	AddPerson(ctx context.Context, person *delivery.Person) error

	// UpdatePerson persists changes to a delivery person (active flag, contact data).
	UpdatePerson(ctx context.Context, person *delivery.Person) error

	// GetPerson retrieves a delivery person by identifier.
	GetPerson(ctx context.Context, id kernel.UUID) (*delivery.Person, error)

	// RemovePerson deletes a delivery person. Fails with a conflict while any
	// assignment references the person ("protected reference").
	RemovePerson(ctx context.Context, id kernel.UUID) error

	// AddAssignment persists a new order assignment. Fails with a conflict
	// when the order already has one; the store's unique constraint backs
	// this even under concurrent assignment attempts.
	AddAssignment(ctx context.Context, assignment *delivery.Assignment) error

	// GetAssignmentByOrder retrieves the assignment bound to an order.
	// Fails with object-not-found when the order is unassigned.
	GetAssignmentByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Assignment, error)

	// RemoveAssignmentByOrder removes the binding for an order if present.
	// Removing a non-existent binding is a no-op.
	RemoveAssignmentByOrder(ctx context.Context, orderID kernel.UUID) error
}
