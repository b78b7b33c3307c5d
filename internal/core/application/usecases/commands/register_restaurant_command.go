package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// RegisterRestaurantCommand represents a request to register a restaurant
// account able to place beverage orders.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	address      string
	phone        string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a restaurant.
// The name is required; address and phone are optional profile details.
func NewRegisterRestaurantCommand(restaurantID kernel.UUID, name, address, phone string) (RegisterRestaurantCommand, error) {
	command := RegisterRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	command.address = address
	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterRestaurantCommandIsNotConstructed if validation fails.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's name.
func (c RegisterRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's address.
func (c RegisterRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant's contact phone.
func (c RegisterRestaurantCommand) Phone() string {
	return c.phone
}

func (c *RegisterRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}
