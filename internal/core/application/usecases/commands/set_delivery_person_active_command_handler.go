package commands

import (
	"context"
)

// SetDeliveryPersonActiveCommandHandler changes delivery staff availability.
type SetDeliveryPersonActiveCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSetDeliveryPersonActiveCommandHandler creates a handler for availability changes.
func NewSetDeliveryPersonActiveCommandHandler(uowFactory DeliveryUoWFactory) SetDeliveryPersonActiveCommandHandler {
	return SetDeliveryPersonActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change. Setting the flag a person
// already holds is a no-op success.
func (h SetDeliveryPersonActiveCommandHandler) Handle(ctx context.Context, command SetDeliveryPersonActiveCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	person, err := deliveryRepo.GetPerson(ctx, command.PersonID())
	if err != nil {
		return err
	}

	if person.Active() == command.Active() {
		return uow.Commit(ctx)
	}

	if command.Active() {
		person.Activate()
	} else {
		person.Deactivate()
	}

	if err = deliveryRepo.UpdatePerson(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
