package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// fulfillment status along the legal lifecycle path.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Processing)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order cannot move to that status from where it is
//	}
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// Validates that the order ID is valid and the target status is a known
// status value. Whether the transition is legal from the order's current
// status is decided by the aggregate when the command is handled.
func NewTransitionOrderCommand(orderID kernel.UUID, newStatus order.Status) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target fulfillment status.
func (c TransitionOrderCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

// statusNotificationMessage builds the notification log entry recorded for
// the owning restaurant when an order's status actually changes.
func statusNotificationMessage(orderID kernel.UUID, newStatus order.Status) string {
	return "Order #" + orderID.String() + " is now " + newStatus.String() + "."
}
