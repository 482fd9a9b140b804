package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorestaurant/menu-svc/internal/domain"
	"gorestaurant/pricing"

	"go.uber.org/zap"
)

var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidOrder     = errors.New("invalid order payload")
	ErrInvalidFavorite  = errors.New("invalid favorite payload")
)

type FoodService struct {
	repo FoodRepository
}

func NewFoodService(repo FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) Get(id int) (*domain.Food, error) {
	food, err := s.repo.GetFood(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get food %d: %w", id, err)
	}
	return food, nil
}

func (s *FoodService) List() ([]domain.Food, error) {
	return s.repo.ListFoods()
}

type FavoriteService struct {
	store FavoriteStore
}

func NewFavoriteService(store FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	return s.store.ListFavorites(ctx)
}

func (s *FavoriteService) Add(ctx context.Context, favorite *domain.Favorite) error {
	if favorite.ID <= 0 || favorite.Name == "" {
		return ErrInvalidFavorite
	}
	return s.store.AddFavorite(ctx, *favorite)
}

func (s *FavoriteService) Remove(ctx context.Context, id int) error {
	removed, err := s.store.RemoveFavorite(ctx, id)
	if err != nil {
		return fmt.Errorf("remove favorite %d: %w", id, err)
	}
	if !removed {
		return ErrFavoriteNotFound
	}
	return nil
}

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, qr QRGenerator, publisher OrderPublisher, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, qrEncoder: qr, publisher: publisher, logger: logger}
}

// Create stores a new order under a fresh id. The total is recomputed
// here; a differing client total is logged and replaced.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	lines := make([]pricing.Line, 0, len(order.Extras))
	for _, extra := range order.Extras {
		lines = append(lines, pricing.Line{Value: extra.Value, Quantity: extra.Quantity})
	}
	total := pricing.Total(order.Price, order.Quantity, lines)
	if !order.Total.IsZero() && !order.Total.Equal(total) {
		s.logger.Warn("client total does not match server total",
			zap.String("client_total", order.Total.String()),
			zap.String("server_total", total.String()))
	}
	order.Total = total
	order.ID = 0

	if err := s.repo.CreateOrder(order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		err := s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:      "order_placed",
			OrderID:   order.ID,
			Name:      order.Name,
			Quantity:  order.Quantity,
			Total:     order.Total,
			Timestamp: time.Now(),
		})
		if err != nil {
			s.logger.Warn("failed to publish order event", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	s.logger.Info("order created",
		zap.Int("order_id", order.ID),
		zap.Int("quantity", order.Quantity),
		zap.Int("extras", len(order.Extras)),
		zap.String("total", order.Total.StringFixed(2)))
	return nil
}

func validateOrder(order *domain.Order) error {
	if order.Name == "" || order.Quantity < 1 || order.Price.IsNegative() {
		return ErrInvalidOrder
	}
	seen := make(map[int]bool, len(order.Extras))
	for _, extra := range order.Extras {
		if extra.Quantity < 1 || extra.Value.IsNegative() {
			return fmt.Errorf("%w: extra %d", ErrInvalidOrder, extra.ID)
		}
		if seen[extra.ID] {
			return fmt.Errorf("%w: duplicate extra %d", ErrInvalidOrder, extra.ID)
		}
		seen[extra.ID] = true
	}
	return nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) GetQRCode(id int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(id); err == nil {
			_ = s.repo.SaveQRCode(id, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(id int) string {
	return fmt.Sprintf("/orders/%d/qrcode", id)
}
