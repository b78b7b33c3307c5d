package commands_test

import (
	"testing"

	"beverage/internal/core/application/usecases/commands"
	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"
	"beverage/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetPriceCommandHandler_Handle_ChangesExistingPrice(t *testing.T) {
	ctx := t.Context()
	newPrice, err := kernel.MoneyFromString("14.00")
	require.NoError(t, err)
	cmd, err := commands.NewSetPriceCommand(catalog.Size1L, newPrice)
	require.NoError(t, err)

	existing := testBottle(t, catalog.Size1L)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetBySize", mock.Anything, catalog.Size1L).Return(existing, nil).Once(),
		catalogRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *catalog.Bottle) bool {
			return b.Price().IsEqual(newPrice)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPriceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetPriceCommandHandler_Handle_AddsUnlistedSize(t *testing.T) {
	ctx := t.Context()
	price, err := kernel.MoneyFromString("20.00")
	require.NoError(t, err)
	cmd, err := commands.NewSetPriceCommand(catalog.Size2L, price)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetBySize", mock.Anything, catalog.Size2L).
			Return(nil, errs.NewObjectNotFoundError("bottle", catalog.Size2L.String())).Once(),
		catalogRepo.On("Add", mock.Anything, mock.MatchedBy(func(b *catalog.Bottle) bool {
			return b.Size() == catalog.Size2L && b.Price().IsEqual(price)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPriceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
