package commands

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/delivery"
)

// AssignDeliveryCommandHandler assigns delivery staff to orders. The
// assignment aggregate refuses inactive people, and the storage layer's
// uniqueness rule refuses a second assignment for the same order.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Returns an ObjectNotFoundError when the order or person does not exist, a
// ValueIsInvalidError when the person is deactivated, and a ConflictError
// when the order is already assigned.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, command.OrderID()); err != nil {
		return err
	}

	person, err := deliveryRepo.GetPerson(ctx, command.PersonID())
	if err != nil {
		return err
	}

	assignment, err := delivery.NewAssignment(
		command.AssignmentID(),
		command.OrderID(),
		person,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.AddAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
