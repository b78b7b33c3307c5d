package commands

import (
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrSetPriceCommandIsNotConstructed = errors.New(
	"SetPriceCommand must be created via NewSetPriceCommand constructor",
)

// SetPriceCommand represents a request to set the unit price for a bottle
// size. Setting a price for a size that is not listed yet adds it to the
// catalog.
type SetPriceCommand struct { //nolint:recvcheck //using for validation
	size  catalog.Size
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewSetPriceCommand creates a command to set a size's unit price.
func NewSetPriceCommand(size catalog.Size, price kernel.Money) (SetPriceCommand, error) {
	command := SetPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSize(size),
	); err != nil {
		return SetPriceCommand{}, err
	}

	command.price = price
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPriceCommandIsNotConstructed if validation fails.
func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

// Size returns the bottle size to price.
func (c SetPriceCommand) Size() catalog.Size {
	return c.size
}

// Price returns the unit price to set.
func (c SetPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *SetPriceCommand) setSize(size catalog.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
