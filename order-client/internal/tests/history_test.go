package tests

import (
	"context"
	"testing"

	"gorestaurant/order-client/internal/domain"
	"gorestaurant/order-client/internal/history"
	"gorestaurant/order-client/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pastOrders() []domain.Order {
	return []domain.Order{
		{
			ID: 1, Name: "Ao molho", Price: dec("10.00"), Quantity: 1,
			Extras: []domain.OrderExtra{{ID: 1, Name: "Bacon", Value: dec("3.00"), Quantity: 2}},
			Total:  dec("999"),
		},
		{
			ID: 2, Name: "Veggie", Price: dec("1234.50"), Quantity: 2,
			Extras: []domain.OrderExtra{},
		},
	}
}

func TestSummarize(t *testing.T) {
	entry := history.Summarize(pastOrders()[0])

	assert.Equal(t, "R$ 16,00", entry.TotalOrderValue)
	assert.Equal(t, "R$ 10,00", entry.FormattedPrice)
	assert.Equal(t, 1, entry.ID)
}

func TestLoader_Reload(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewOrderLister(t)
	loader := history.NewLoader(store, nil)

	store.On("ListOrders", ctx).Return(pastOrders(), nil).Once()

	entries, err := loader.Reload(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "R$ 16,00", entries[0].TotalOrderValue)
	assert.Equal(t, "R$ 2.469,00", entries[1].TotalOrderValue)
	assert.Equal(t, "R$ 1.234,50", entries[1].FormattedPrice)
	assert.Equal(t, entries, loader.Entries())
	assert.True(t, loader.Spent().Equal(dec("2485")))
}

func TestLoader_ReloadFetchesEveryTime(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewOrderLister(t)
	loader := history.NewLoader(store, nil)

	store.On("ListOrders", ctx).Return(pastOrders()[:1], nil).Once()
	store.On("ListOrders", ctx).Return(pastOrders(), nil).Once()

	first, err := loader.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := loader.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestLoader_ReloadFailureKeepsEntries(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewOrderLister(t)
	loader := history.NewLoader(store, nil)

	store.On("ListOrders", ctx).Return(pastOrders(), nil).Once()
	store.On("ListOrders", ctx).Return(nil, assert.AnError).Once()

	_, err := loader.Reload(ctx)
	require.NoError(t, err)

	entries, err := loader.Reload(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, entries, 2)
	assert.Len(t, loader.Entries(), 2)
}
