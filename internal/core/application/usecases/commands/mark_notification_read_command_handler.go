package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler marks notification log entries as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read-flag updates.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Marking an entry that is already read
// commits without changing anything.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, command MarkNotificationReadCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	entry, err := notificationRepo.GetOwned(ctx, command.NotificationID(), command.RestaurantID())
	if err != nil {
		return err
	}

	if entry.Read() {
		return uow.Commit(ctx)
	}

	entry.MarkRead()

	if err = notificationRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
