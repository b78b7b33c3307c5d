package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
		"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
	)
	ErrDeliveryPersonNameIsRequired = errors.New("delivery person name is required")
)

// CreateDeliveryPersonCommand represents a request to register a delivery
// person. New people start active and eligible for assignments.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	personID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a delivery person.
// The name is required; the phone is optional contact detail.
func NewCreateDeliveryPersonCommand(personID kernel.UUID, name, phone string) (CreateDeliveryPersonCommand, error) {
	command := CreateDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPersonID(personID),
		command.setName(name),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryPersonCommandIsNotConstructed if validation fails.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the unique identifier for the new delivery person.
func (c CreateDeliveryPersonCommand) PersonID() kernel.UUID {
	return c.personID
}

// Name returns the delivery person's name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// Phone returns the delivery person's contact phone.
func (c CreateDeliveryPersonCommand) Phone() string {
	return c.phone
}

func (c *CreateDeliveryPersonCommand) setPersonID(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	c.personID = personID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return ErrDeliveryPersonNameIsRequired
	}

	c.name = name
	return nil
}
