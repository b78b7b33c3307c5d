package commands

import (
	"context"
	"log/slog"
	"time"

	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
)

// ForceSetStatusCommandHandler applies administrative status overrides.
// Every override is logged at warn level with the operator's reason, and the
// owning restaurant still receives a status notification when the status
// actually changed.
type ForceSetStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewForceSetStatusCommandHandler creates a handler for status overrides.
func NewForceSetStatusCommandHandler(uowFactory FulfillmentUoWFactory, logger *slog.Logger) ForceSetStatusCommandHandler {
	return ForceSetStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "force_set_status"),
	}
}

// Handle processes the override command. The lifecycle transition rules are
// bypassed; only the target status value itself is validated.
func (h ForceSetStatusCommandHandler) Handle(ctx context.Context, command ForceSetStatusCommand) error {
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

	previous := aggregate.Status()
	if previous == command.NewStatus() {
		return uow.Commit(ctx)
	}

	if err = aggregate.ForceSetStatus(command.NewStatus()); err != nil {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.WarnContext(ctx, "order status overridden",
		"order_id", aggregate.ID().String(),
		"from", previous.String(),
		"to", aggregate.Status().String(),
		"reason", command.Reason(),
	)

	return nil
}
