package commands

import (
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/pkg/guard"
)

var ErrRemoveSizeCommandIsNotConstructed = errors.New(
	"RemoveSizeCommand must be created via NewRemoveSizeCommand constructor",
)

// RemoveSizeCommand represents a request to delist a bottle size from the
// catalog. The removal is refused while orders still reference the size.
type RemoveSizeCommand struct { //nolint:recvcheck //using for validation
	size catalog.Size

	guard guard.ConstructorGuard
}

// NewRemoveSizeCommand creates a command to delist a bottle size.
func NewRemoveSizeCommand(size catalog.Size) (RemoveSizeCommand, error) {
	command := RemoveSizeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSize(size); err != nil {
		return RemoveSizeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveSizeCommandIsNotConstructed if validation fails.
func (c RemoveSizeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSizeCommandIsNotConstructed)
}

// Size returns the bottle size to delist.
func (c RemoveSizeCommand) Size() catalog.Size {
	return c.size
}

func (c *RemoveSizeCommand) setSize(size catalog.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
