package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var (
	ErrTransitionOrdersCommandIsNotConstructed = errors.New(
		"TransitionOrdersCommand must be created via NewTransitionOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order ID is required")
)

// TransitionOrdersCommand represents a request to move several orders to the
// same fulfillment status in one batch, such as marking a whole dispatch run
// out for delivery.
type TransitionOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs  []kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrdersCommand creates a batch status change command.
// Validates that the list is non-empty, every ID is valid, and the target
// status is a known status value.
func NewTransitionOrdersCommand(orderIDs []kernel.UUID, newStatus order.Status) (TransitionOrdersCommand, error) {
	command := TransitionOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderIDs(orderIDs),
		command.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrdersCommandIsNotConstructed if validation fails.
func (c TransitionOrdersCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to transition.
func (c TransitionOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// NewStatus returns the target fulfillment status.
func (c TransitionOrdersCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *TransitionOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *TransitionOrdersCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
