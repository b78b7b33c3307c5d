package commands

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
)

// TransitionOrderCommandHandler orchestrates a single order status change.
// The order row is locked for the duration of the transaction so concurrent
// transitions on the same order serialize and each one is validated against
// the status it actually finds.
type TransitionOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order status changes.
func NewTransitionOrderCommandHandler(uowFactory FulfillmentUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// A transition to the current status of a non-terminal order is accepted and
// changes nothing; no notification entry is recorded for it. Terminal orders
// reject every transition, their own status included. An illegal transition
// returns an InvalidTransitionError and leaves the order untouched.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == command.NewStatus() && !aggregate.Status().IsTerminal() {
		return uow.Commit(ctx)
	}

	if err = aggregate.Transition(command.NewStatus()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := notification.NewNotification(
		kernel.NewUUID(),
		aggregate.RestaurantID(),
		statusNotificationMessage(aggregate.ID(), aggregate.Status()),
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
