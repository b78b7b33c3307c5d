package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrRemoveDeliveryPersonCommandIsNotConstructed = errors.New(
	"RemoveDeliveryPersonCommand must be created via NewRemoveDeliveryPersonCommand constructor",
)

// RemoveDeliveryPersonCommand represents a request to remove a delivery
// person from the roster. The removal is refused while the person still
// holds assignments.
type RemoveDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	personID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDeliveryPersonCommand creates a command to remove a delivery person.
func NewRemoveDeliveryPersonCommand(personID kernel.UUID) (RemoveDeliveryPersonCommand, error) {
	command := RemoveDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPersonID(personID); err != nil {
		return RemoveDeliveryPersonCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveDeliveryPersonCommandIsNotConstructed if validation fails.
func (c RemoveDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the identifier of the delivery person to remove.
func (c RemoveDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

func (c *RemoveDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}
