package commands

import (
	"context"
)

// RemoveDeliveryPersonCommandHandler removes delivery staff from the roster.
type RemoveDeliveryPersonCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRemoveDeliveryPersonCommandHandler creates a handler for staff removal.
func NewRemoveDeliveryPersonCommandHandler(uowFactory DeliveryUoWFactory) RemoveDeliveryPersonCommandHandler {
	return RemoveDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns a ConflictError while the person still holds assignments.
func (h RemoveDeliveryPersonCommandHandler) Handle(ctx context.Context, command RemoveDeliveryPersonCommand) error {
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

	if err := uow.DeliveryRepository().RemovePerson(ctx, command.PersonID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
