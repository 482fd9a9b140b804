package service

import (
	"context"

	"gorestaurant/menu-svc/internal/domain"
)

type FoodRepository interface {
	GetFood(id int) (*domain.Food, error)
	ListFoods() ([]domain.Food, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type FavoriteStore interface {
	ListFavorites(ctx context.Context) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, favorite domain.Favorite) error
	RemoveFavorite(ctx context.Context, id int) (bool, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type FoodServiceInterface interface {
	Get(id int) (*domain.Food, error)
	List() ([]domain.Food, error)
}

type FavoriteServiceInterface interface {
	List(ctx context.Context) ([]domain.Favorite, error)
	Add(ctx context.Context, favorite *domain.Favorite) error
	Remove(ctx context.Context, id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(id int) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(id int) ([]byte, error)
	QRLink(id int) string
}

var (
	_ FoodServiceInterface     = (*FoodService)(nil)
	_ FavoriteServiceInterface = (*FavoriteService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
)
