package commands

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
)

// UpdateProfileCommandHandler updates restaurant profile details and records
// the confirmation entry in the restaurant's notification log, in one
// transaction.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, command UpdateProfileCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	aggregate, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(command.Name(), command.Address(), command.Phone()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := notification.NewNotification(
		kernel.NewUUID(),
		aggregate.ID(),
		profileNotificationMessage,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
