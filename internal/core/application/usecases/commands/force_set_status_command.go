package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/guard"
)

var ErrForceSetStatusCommandIsNotConstructed = errors.New(
	"ForceSetStatusCommand must be created via NewForceSetStatusCommand constructor",
)

// ForceSetStatusCommand represents an administrative request to set an
// order's status directly, bypassing the lifecycle transition rules. Used to
// repair records after out-of-band corrections, not for normal fulfillment.
type ForceSetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	reason    string

	guard guard.ConstructorGuard
}

// NewForceSetStatusCommand creates an administrative status override command.
// The reason is free-form operator context recorded in the log output.
func NewForceSetStatusCommand(orderID kernel.UUID, newStatus order.Status, reason string) (ForceSetStatusCommand, error) {
	command := ForceSetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNewStatus(newStatus),
	); err != nil {
		return ForceSetStatusCommand{}, err
	}

	command.reason = reason
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrForceSetStatusCommandIsNotConstructed if validation fails.
func (c ForceSetStatusCommand) Validate() error {
	return c.guard.Validate(ErrForceSetStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to override.
func (c ForceSetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the status to set regardless of the current one.
func (c ForceSetStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Reason returns the operator-supplied context for the override.
func (c ForceSetStatusCommand) Reason() string {
	return c.reason
}

func (c *ForceSetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ForceSetStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
