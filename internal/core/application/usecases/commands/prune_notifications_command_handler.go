package commands

import (
	"context"
	"time"
)

// PruneNotificationsCommandHandler deletes aged read notification entries.
// Invoked on a schedule rather than by user action.
type PruneNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPruneNotificationsCommandHandler creates a handler for notification pruning.
func NewPruneNotificationsCommandHandler(uowFactory NotificationUoWFactory) PruneNotificationsCommandHandler {
	return PruneNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pruning command and reports how many entries were
// deleted.
func (h PruneNotificationsCommandHandler) Handle(ctx context.Context, command PruneNotificationsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.Retention())
	pruned, err := uow.NotificationRepository().RemoveReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return pruned, nil
}
