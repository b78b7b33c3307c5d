package catalog_test

import (
	"testing"

	"beverage/internal/core/domain/model/catalog"
	"beverage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewBottle(t *testing.T) {
	t.Run("creates a valid catalog entry", func(t *testing.T) {
		id := kernel.NewUUID()
		price := mustMoney(t, "2.50")

		bottle, err := catalog.NewBottle(id, catalog.Size1L, price)

		require.NoError(t, err)
		require.NoError(t, bottle.Validate())
		assert.True(t, bottle.ID().IsEqual(id))
		assert.Equal(t, catalog.Size1L, bottle.Size())
		assert.True(t, bottle.Price().IsEqual(price))
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := catalog.NewBottle(kernel.UUID{}, catalog.Size1L, kernel.ZeroMoney())

		require.Error(t, err)
	})

	t.Run("rejects unknown size", func(t *testing.T) {
		_, err := catalog.NewBottle(kernel.NewUUID(), catalog.SizeUnknown, kernel.ZeroMoney())

		require.Error(t, err)
	})
}

func TestBottle_ChangePrice(t *testing.T) {
	t.Run("set then read returns the exact price", func(t *testing.T) {
		bottle, err := catalog.NewBottle(kernel.NewUUID(), catalog.Size500ML, mustMoney(t, "1.00"))
		require.NoError(t, err)

		newPrice := mustMoney(t, "1.37")
		bottle.ChangePrice(newPrice)

		assert.True(t, bottle.Price().IsEqual(newPrice))
		assert.Equal(t, "1.37", bottle.Price().String())
	})
}

func TestBottle_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var bottle catalog.Bottle

		require.ErrorIs(t, bottle.Validate(), catalog.ErrBottleIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var bottle *catalog.Bottle

		require.ErrorIs(t, bottle.Validate(), catalog.ErrBottleIsNotConstructed)
	})
}

func TestBottle_MinimumQuantity(t *testing.T) {
	bottle, err := catalog.NewBottle(kernel.NewUUID(), catalog.Size2L, kernel.ZeroMoney())
	require.NoError(t, err)

	assert.Equal(t, catalog.MinimumQuantity(catalog.Size2L), bottle.MinimumQuantity())
}
