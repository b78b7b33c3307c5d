package commands_test

import (
	"testing"

	"beverage/internal/core/application/usecases/commands"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/order"
	"beverage/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransitionOrdersCommandHandler_Handle_MixedResults(t *testing.T) {
	ctx := t.Context()
	readyID := kernel.NewUUID()
	stuckID := kernel.NewUUID()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrdersCommand(
		[]kernel.UUID{readyID, stuckID, missingID}, order.Processing)
	require.NoError(t, err)

	ready := testOrderInStatus(t, readyID, order.Pending)
	stuck := testOrderInStatus(t, stuckID, order.Delivered)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetForUpdate", mock.Anything, readyID).Return(ready, nil).Once()
	orderRepo.On("GetForUpdate", mock.Anything, stuckID).Return(stuck, nil).Once()
	orderRepo.On("GetForUpdate", mock.Anything, missingID).
		Return(nil, errs.NewObjectNotFoundError("order", missingID.String())).Once()
	orderRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
		Return(nil).Once()

	uow := new(MockFulfillmentUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewTransitionOrdersCommandHandler(factory)
	results, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.True(t, results[0].OrderID.IsEqual(readyID))
	require.NoError(t, results[0].Err)

	require.True(t, results[1].OrderID.IsEqual(stuckID))
	require.ErrorIs(t, results[1].Err, errs.ErrInvalidTransition)

	require.True(t, results[2].OrderID.IsEqual(missingID))
	require.ErrorIs(t, results[2].Err, errs.ErrObjectNotFound)

	orderRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewTransitionOrdersCommand_EmptyList(t *testing.T) {
	_, err := commands.NewTransitionOrdersCommand(nil, order.Processing)
	require.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)
}
