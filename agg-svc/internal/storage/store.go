package storage

import (
	"context"
	"fmt"
	"time"

	"gorestaurant/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	AllTimeKey    = "stats:alltime"
	OrdersKey     = "stats:orders"
	RevenueKey    = "stats:revenue_cents"
	dailyRetained = 7 * 24 * time.Hour
)

// Store keeps order popularity and revenue counters in Redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func DailyKey(day time.Time) string {
	return "stats:daily:" + day.UTC().Format("2006-01-02")
}

// RecordOrder bumps the food's daily and all-time scores by the ordered
// quantity and adds the order total, in cents, to the revenue counter.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	day := event.Timestamp
	if day.IsZero() {
		day = time.Now()
	}
	dailyKey := DailyKey(day)
	quantity := float64(event.Quantity)

	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, dailyKey, quantity, event.Name)
	pipe.Expire(ctx, dailyKey, dailyRetained)
	pipe.ZIncrBy(ctx, AllTimeKey, quantity, event.Name)
	pipe.Incr(ctx, OrdersKey)
	pipe.IncrBy(ctx, RevenueKey, event.Total.Shift(2).Round(0).IntPart())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record order %d: %w", event.OrderID, err)
	}
	return nil
}
