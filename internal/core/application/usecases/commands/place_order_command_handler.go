package commands

import (
	"context"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
	"beverage/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler orchestrates order placement. It resolves the
// requested size against the catalog, creates the order aggregate with the
// minimum-quantity policy applied, and records the confirmation entry in the
// restaurant's notification log, all in one transaction.
type PlaceOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderingUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Returns an ObjectNotFoundError when the restaurant or the catalog entry for
// the requested size does not exist, and a ValueIsInvalidError when the
// quantity is below the size's minimum.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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

	if _, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID()); err != nil {
		return err
	}

	bottle, err := uow.CatalogRepository().GetBySize(ctx, command.Size())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.RestaurantID(),
		bottle.ID(),
		bottle.Size(),
		command.Quantity(),
		command.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	entry, err := notification.NewNotification(
		kernel.NewUUID(),
		command.RestaurantID(),
		placedNotificationMessage(newOrder.ID()),
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
