package favorite

import (
	"context"
	"fmt"

	"gorestaurant/order-client/internal/domain"

	"go.uber.org/zap"
)

const (
	iconFavorite       = "favorite"
	iconFavoriteBorder = "favorite-border"
)

type Store interface {
	ListFavorites(ctx context.Context) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, favorite domain.Favorite) error
	RemoveFavorite(ctx context.Context, id int) error
}

// ToggleResult is the outcome of a toggle. IsFavorite is the flag after the
// call; when Err is set it equals the flag before the call.
type ToggleResult struct {
	IsFavorite bool
	Err        error
}

// Toggle tracks whether one food is a favorite and flips it against the store.
// The local flag only changes once the store confirmed the write.
type Toggle struct {
	store      Store
	logger     *zap.Logger
	isFavorite bool
}

func NewToggle(store Store, logger *zap.Logger) *Toggle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toggle{store: store, logger: logger}
}

// Load scans the stored favorites for foodID and sets the initial flag.
func (t *Toggle) Load(ctx context.Context, foodID int) (bool, error) {
	favorites, err := t.store.ListFavorites(ctx)
	if err != nil {
		return t.isFavorite, fmt.Errorf("load favorites: %w", err)
	}

	t.isFavorite = false
	for _, fav := range favorites {
		if fav.ID == foodID {
			t.isFavorite = true
			break
		}
	}
	return t.isFavorite, nil
}

func (t *Toggle) IsFavorite() bool { return t.isFavorite }

func (t *Toggle) Toggle(ctx context.Context, food domain.Food) ToggleResult {
	var err error
	if t.isFavorite {
		err = t.store.RemoveFavorite(ctx, food.ID)
	} else {
		err = t.store.AddFavorite(ctx, food.Favorite())
	}

	if err != nil {
		t.logger.Warn("favorite toggle failed",
			zap.Int("food_id", food.ID),
			zap.Bool("was_favorite", t.isFavorite),
			zap.Error(err),
		)
		return ToggleResult{IsFavorite: t.isFavorite, Err: err}
	}

	t.isFavorite = !t.isFavorite
	return ToggleResult{IsFavorite: t.isFavorite}
}

func IconName(isFavorite bool) string {
	if isFavorite {
		return iconFavorite
	}
	return iconFavoriteBorder
}
