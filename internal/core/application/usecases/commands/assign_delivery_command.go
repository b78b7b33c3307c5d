package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to assign a delivery person to
// an order. An order carries at most one assignment at a time.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(kernel.NewUUID(), orderID, personID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the order is already assigned
//	}
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	orderID      kernel.UUID
	personID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery person to an order.
func NewAssignDeliveryCommand(assignmentID, orderID, personID kernel.UUID) (AssignDeliveryCommand, error) {
	command := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setOrderID(orderID),
		command.setPersonID(personID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c AssignDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the identifier of the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PersonID returns the identifier of the delivery person to assign.
func (c AssignDeliveryCommand) PersonID() kernel.UUID {
	return c.personID
}

func (c *AssignDeliveryCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}
