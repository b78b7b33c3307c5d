package commands

import (
	"context"
	"errors"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"
)

// SetPriceCommandHandler maintains catalog prices. A size already in the
// catalog gets its price changed; an unlisted size is added with the given
// price.
type SetPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSetPriceCommandHandler creates a handler for catalog price changes.
func NewSetPriceCommandHandler(uowFactory CatalogUoWFactory) SetPriceCommandHandler {
	return SetPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price change command.
func (h SetPriceCommandHandler) Handle(ctx context.Context, command SetPriceCommand) error {
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

	catalogRepo := uow.CatalogRepository()

	bottle, err := catalogRepo.GetBySize(ctx, command.Size())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		bottle, err = catalog.NewBottle(kernel.NewUUID(), command.Size(), command.Price())
		if err != nil {
			return err
		}
		if err = catalogRepo.Add(ctx, bottle); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		bottle.ChangePrice(command.Price())
		if err = catalogRepo.Update(ctx, bottle); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
