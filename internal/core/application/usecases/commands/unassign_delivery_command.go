package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrUnassignDeliveryCommandIsNotConstructed = errors.New(
	"UnassignDeliveryCommand must be created via NewUnassignDeliveryCommand constructor",
)

// UnassignDeliveryCommand represents a request to clear an order's delivery
// assignment. Clearing an order that has no assignment succeeds without
// effect.
type UnassignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignDeliveryCommand creates a command to clear an order's assignment.
func NewUnassignDeliveryCommand(orderID kernel.UUID) (UnassignDeliveryCommand, error) {
	command := UnassignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return UnassignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnassignDeliveryCommandIsNotConstructed if validation fails.
func (c UnassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to unassign.
func (c UnassignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnassignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
