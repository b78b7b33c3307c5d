package commands

import (
	"context"

	"beverage/internal/core/domain/model/delivery"
)

// CreateDeliveryPersonCommandHandler registers new delivery staff.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for staff registration.
func NewCreateDeliveryPersonCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, command CreateDeliveryPersonCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	person, err := delivery.NewPerson(command.PersonID(), command.Name(), command.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().AddPerson(ctx, person); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
