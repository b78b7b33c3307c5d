package commands

import (
	"errors"
	"time"

	"beverage/internal/pkg/guard"
)

var (
	ErrPruneNotificationsCommandIsNotConstructed = errors.New(
		"PruneNotificationsCommand must be created via NewPruneNotificationsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PruneNotificationsCommand represents a housekeeping request to delete read
// notification entries older than the retention window. Unread entries are
// kept regardless of age.
type PruneNotificationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPruneNotificationsCommand creates a command to prune aged read entries.
func NewPruneNotificationsCommand(retention time.Duration) (PruneNotificationsCommand, error) {
	command := PruneNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRetention(retention); err != nil {
		return PruneNotificationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPruneNotificationsCommandIsNotConstructed if validation fails.
func (c PruneNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPruneNotificationsCommandIsNotConstructed)
}

// Retention returns how long read entries are kept.
func (c PruneNotificationsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PruneNotificationsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
