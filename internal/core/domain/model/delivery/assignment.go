package delivery

import (
	"errors"
	"fmt"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
	"beverage/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment constructor")
)

// Assignment binds one order to one delivery person. Uniqueness per order
// is enforced both here (callers check for an existing binding) and by the
// persistence layer's unique constraint, which closes the race between two
// concurrent administrative actions.
type Assignment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	personID   kernel.UUID
	assignedAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignment binds an order to a delivery person.
// The person must be active; inactive people are rejected with an
// InvalidValue error.
func NewAssignment(id kernel.UUID, orderID kernel.UUID, person *Person, assignedAt time.Time) (*Assignment, error) {
	if err := person.Validate(); err != nil {
		return nil, err
	}
	if !person.Active() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"person", fmt.Errorf("%s is not active", person.Name()))
	}

	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setAssignedAt(assignedAt),
	); err != nil {
		return nil, err
	}

	a.personID = person.ID()
	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
// The person's current active flag is not re-checked: deactivation only
// blocks new assignments, never invalidates existing ones.
func RestoreAssignment(id, orderID, personID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setAssignedAt(assignedAt),
		personID.Validate(),
	); err != nil {
		return nil, err
	}

	a.personID = personID
	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the bound order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// PersonID returns the bound delivery person's identifier.
func (a *Assignment) PersonID() kernel.UUID {
	return a.personID
}

// AssignedAt returns the binding timestamp.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setAssignedAt(assignedAt time.Time) error {
	if assignedAt.IsZero() {
		return errs.NewValueIsRequiredError("assignedAt")
	}
	a.assignedAt = assignedAt
	return nil
}
