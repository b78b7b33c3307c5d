package commands

import (
	"context"
)

// UnassignDeliveryCommandHandler clears delivery assignments.
type UnassignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUnassignDeliveryCommandHandler creates a handler for clearing assignments.
func NewUnassignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UnassignDeliveryCommandHandler {
	return UnassignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command. Unassigning an order with no
// assignment is a no-op success.
func (h UnassignDeliveryCommandHandler) Handle(ctx context.Context, command UnassignDeliveryCommand) error {
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

	if err := uow.DeliveryRepository().RemoveAssignmentByOrder(ctx, command.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
