package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gorestaurant/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const favoritesKey = "favorites"

// RedisFavorites keeps favorites in a single hash keyed by food id.
type RedisFavorites struct {
	Client *redis.Client
}

func NewRedisFavorites(client *redis.Client) *RedisFavorites {
	return &RedisFavorites{Client: client}
}

func (f *RedisFavorites) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	entries, err := f.Client.HGetAll(ctx, favoritesKey).Result()
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Favorite, 0, len(entries))
	for field, raw := range entries {
		var favorite domain.Favorite
		if err := json.Unmarshal([]byte(raw), &favorite); err != nil {
			return nil, fmt.Errorf("decode favorite %s: %w", field, err)
		}
		favorites = append(favorites, favorite)
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i].ID < favorites[j].ID })
	return favorites, nil
}

func (f *RedisFavorites) AddFavorite(ctx context.Context, favorite domain.Favorite) error {
	payload, err := json.Marshal(favorite)
	if err != nil {
		return err
	}
	return f.Client.HSet(ctx, favoritesKey, strconv.Itoa(favorite.ID), payload).Err()
}

func (f *RedisFavorites) RemoveFavorite(ctx context.Context, id int) (bool, error) {
	removed, err := f.Client.HDel(ctx, favoritesKey, strconv.Itoa(id)).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
