package commands

import (
	"errors"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a request to mark one of a
// restaurant's notification entries as read. Marking an already-read entry
// succeeds without effect.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	restaurantID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
// The restaurant ID scopes the lookup so one restaurant cannot touch
// another's entries.
func NewMarkNotificationReadCommand(notificationID, restaurantID kernel.UUID) (MarkNotificationReadCommand, error) {
	command := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNotificationID(notificationID),
		command.setRestaurantID(restaurantID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the identifier of the entry to mark.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// RestaurantID returns the identifier of the owning restaurant.
func (c MarkNotificationReadCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}

func (c *MarkNotificationReadCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
