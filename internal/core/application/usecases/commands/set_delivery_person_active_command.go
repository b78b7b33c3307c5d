package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrSetDeliveryPersonActiveCommandIsNotConstructed = errors.New(
	"SetDeliveryPersonActiveCommand must be created via NewSetDeliveryPersonActiveCommand constructor",
)

// SetDeliveryPersonActiveCommand represents a request to activate or
// deactivate a delivery person. Deactivated people keep their existing
// assignments but cannot receive new ones.
type SetDeliveryPersonActiveCommand struct { //nolint:recvcheck //using for validation
	personID kernel.UUID
	active   bool

	guard guard.ConstructorGuard
}

// NewSetDeliveryPersonActiveCommand creates a command to change a delivery
// person's availability.
func NewSetDeliveryPersonActiveCommand(personID kernel.UUID, active bool) (SetDeliveryPersonActiveCommand, error) {
	command := SetDeliveryPersonActiveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPersonID(personID); err != nil {
		return SetDeliveryPersonActiveCommand{}, err
	}

	command.active = active
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetDeliveryPersonActiveCommandIsNotConstructed if validation fails.
func (c SetDeliveryPersonActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryPersonActiveCommandIsNotConstructed)
}

// PersonID returns the identifier of the delivery person.
func (c SetDeliveryPersonActiveCommand) PersonID() kernel.UUID {
	return c.personID
}

// Active returns the availability to set.
func (c SetDeliveryPersonActiveCommand) Active() bool {
	return c.active
}

func (c *SetDeliveryPersonActiveCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}
