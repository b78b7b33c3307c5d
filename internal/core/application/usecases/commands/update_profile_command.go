package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request to update a restaurant's profile
// details. A confirmation entry is recorded in the restaurant's notification
// log when the update is applied.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string
	phone        string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a restaurant profile.
// The name is required; address and phone replace the stored values as given.
func NewUpdateProfileCommand(restaurantID kernel.UUID, name, address, phone string) (UpdateProfileCommand, error) {
	command := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	command.address = address
	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProfileCommandIsNotConstructed if validation fails.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to update.
func (c UpdateProfileCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new restaurant name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Address returns the new restaurant address.
func (c UpdateProfileCommand) Address() string {
	return c.address
}

// Phone returns the new contact phone.
func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

func (c *UpdateProfileCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateProfileCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

// profileNotificationMessage is the confirmation entry recorded when a
// restaurant's profile is updated.
const profileNotificationMessage = "Profile updated."
