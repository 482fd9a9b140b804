package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gorestaurant/menu-svc/internal/domain"
	"gorestaurant/menu-svc/internal/mocks"
	"gorestaurant/menu-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFoodService_Get(t *testing.T) {
	tests := []struct {
		name     string
		mockFood *domain.Food
		mockErr  error
		wantErr  error
	}{
		{
			name:     "found",
			mockFood: &domain.Food{ID: 1, Name: "Ao molho", Price: dec("19.90")},
		},
		{
			name:    "not found",
			mockErr: sql.ErrNoRows,
			wantErr: service.ErrFoodNotFound,
		},
		{
			name:    "database error",
			mockErr: assert.AnError,
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewFoodRepository(t)
			svc := service.NewFoodService(repo)

			repo.On("GetFood", 1).Return(testCase.mockFood, testCase.mockErr).Once()

			food, err := svc.Get(1)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, food)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.mockFood, food)
		})
	}
}

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("valid favorite is stored", func(t *testing.T) {
		store := mocks.NewFavoriteStore(t)
		svc := service.NewFavoriteService(store)
		favorite := &domain.Favorite{ID: 3, Name: "Veggie", Price: dec("21.90")}

		store.On("AddFavorite", ctx, *favorite).Return(nil).Once()

		assert.NoError(t, svc.Add(ctx, favorite))
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		store := mocks.NewFavoriteStore(t)
		svc := service.NewFavoriteService(store)

		err := svc.Add(ctx, &domain.Favorite{Name: "Veggie"})
		assert.ErrorIs(t, err, service.ErrInvalidFavorite)
		store.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		removed bool
		mockErr error
		wantErr error
	}{
		{name: "removed", removed: true},
		{name: "not a favorite", removed: false, wantErr: service.ErrFavoriteNotFound},
		{name: "store error", mockErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewFavoriteStore(t)
			svc := service.NewFavoriteService(store)

			store.On("RemoveFavorite", ctx, 7).Return(testCase.removed, testCase.mockErr).Once()

			err := svc.Remove(ctx, 7)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores order with server computed total", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		qr := mocks.NewQRGenerator(t)
		publisher := mocks.NewOrderPublisher(t)
		svc := service.NewOrderService(repo, qr, publisher, nil)

		order := &domain.Order{
			ID:       99,
			Name:     "Ao molho",
			Price:    dec("10.00"),
			Quantity: 1,
			Extras:   []domain.OrderExtra{{ID: 1, Name: "Bacon", Value: dec("3.00"), Quantity: 2}},
			Total:    dec("1.00"),
		}

		repo.On("CreateOrder", mock.MatchedBy(func(o *domain.Order) bool {
			return o.ID == 0 && o.Total.Equal(dec("16"))
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 5
		}).Return(nil).Once()
		qr.On("Generate", 5).Return([]byte("png"), nil).Once()
		repo.On("SaveQRCode", 5, []byte("png")).Return(nil).Once()
		publisher.On("PublishOrder", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == "order_placed" && e.OrderID == 5 && e.Total.Equal(dec("16"))
		})).Return(nil).Once()

		require.NoError(t, svc.Create(ctx, order))
		assert.Equal(t, 5, order.ID)
		assert.Equal(t, "16.00", order.Total.StringFixed(2))
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		publisher := mocks.NewOrderPublisher(t)
		svc := service.NewOrderService(repo, nil, publisher, nil)

		repo.On("CreateOrder", mock.Anything).Return(nil).Once()
		publisher.On("PublishOrder", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		err := svc.Create(ctx, &domain.Order{Name: "Ao molho", Price: dec("10"), Quantity: 2})
		assert.NoError(t, err)
	})

	invalid := []struct {
		name  string
		order *domain.Order
	}{
		{name: "zero quantity", order: &domain.Order{Name: "Ao molho", Price: dec("10"), Quantity: 0}},
		{name: "missing name", order: &domain.Order{Price: dec("10"), Quantity: 1}},
		{name: "zero quantity extra", order: &domain.Order{
			Name: "Ao molho", Price: dec("10"), Quantity: 1,
			Extras: []domain.OrderExtra{{ID: 1, Value: dec("1"), Quantity: 0}},
		}},
		{name: "negative price", order: &domain.Order{Name: "Ao molho", Price: dec("-1"), Quantity: 1}},
		{name: "duplicate extra", order: &domain.Order{
			Name: "Ao molho", Price: dec("10"), Quantity: 1,
			Extras: []domain.OrderExtra{
				{ID: 1, Value: dec("3"), Quantity: 1},
				{ID: 1, Value: dec("3"), Quantity: 2},
			},
		}},
	}

	for _, testCase := range invalid {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			svc := service.NewOrderService(repo, nil, nil, nil)

			err := svc.Create(ctx, testCase.order)
			assert.ErrorIs(t, err, service.ErrInvalidOrder)
			repo.AssertNotCalled(t, "CreateOrder", mock.Anything)
		})
	}
}

func TestOrderService_GetQRCode(t *testing.T) {
	t.Run("regenerates a missing code", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		qr := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repo, qr, nil, nil)

		repo.On("GetQRCode", 4).Return([]byte{}, nil).Once()
		qr.On("Generate", 4).Return([]byte("png"), nil).Once()
		repo.On("SaveQRCode", 4, []byte("png")).Return(nil).Once()

		code, err := svc.GetQRCode(4)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), code)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil, nil)

		repo.On("GetQRCode", 4).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetQRCode(4)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestDefaultQRGenerator_Generate(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost"}.Generate(12)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
