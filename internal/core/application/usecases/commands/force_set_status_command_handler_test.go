package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"beverage/internal/core/application/usecases/commands"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
	"beverage/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForceSetStatusCommandHandler_Handle_BypassesTransitionRules(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewForceSetStatusCommand(orderID, order.Processing, "support ticket 4821")
	require.NoError(t, err)

	// Delivered is terminal; a regular transition out of it is illegal.
	aggregate := testOrderInStatus(t, orderID, order.Delivered)

	orderRepo := new(MockOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Processing
		})).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Message() == "Order #"+orderID.String()+" is now PROCESSING."
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewForceSetStatusCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Processing, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestForceSetStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewForceSetStatusCommand(orderID, order.Delivered, "")
	require.NoError(t, err)

	aggregate := testOrderInStatus(t, orderID, order.Delivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewForceSetStatusCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewForceSetStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewForceSetStatusCommand(kernel.NewUUID(), order.StatusUnknown, "")
	require.Error(t, err)
}
