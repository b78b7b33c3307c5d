package commands

import (
	"context"

	"beverage/internal/core/domain/model/restaurant"
)

// RegisterRestaurantCommandHandler registers restaurant accounts.
type RegisterRestaurantCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant registration.
func NewRegisterRestaurantCommandHandler(uowFactory AccountUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, command RegisterRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.Name(),
		command.Address(),
		command.Phone(),
	)
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

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
