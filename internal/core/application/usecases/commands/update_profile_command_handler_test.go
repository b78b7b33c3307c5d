package commands_test

import (
	"testing"

	"beverage/internal/core/application/usecases/commands"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/core/domain/model/notification"
	"beverage/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewUpdateProfileCommand(restaurantID, "Blue Lotus II", "14 Canal St", "555-0102")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, restaurantID).
			Return(testRestaurant(t, restaurantID), nil).Once(),
		restaurantRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
			return r.Name() == "Blue Lotus II" && r.Address() == "14 Canal St"
		})).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Message() == "Profile updated." && n.RestaurantID().IsEqual(restaurantID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	restaurantRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdateProfileCommand_EmptyName(t *testing.T) {
	_, err := commands.NewUpdateProfileCommand(kernel.NewUUID(), "", "addr", "phone")
	require.ErrorIs(t, err, commands.ErrRestaurantNameIsRequired)
}
