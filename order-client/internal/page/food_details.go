package page

import (
	"context"
	"fmt"

	"gorestaurant/order-client/internal/composition"
	"gorestaurant/order-client/internal/domain"
	"gorestaurant/order-client/internal/favorite"
	"gorestaurant/order-client/internal/submission"

	"go.uber.org/zap"
)

type Catalog interface {
	GetFood(ctx context.Context, id int) (*domain.Food, error)
}

// FoodDetails owns everything a single visit of the food detail page needs.
type FoodDetails struct {
	State     *composition.State
	favorites *favorite.Toggle
	submitter *submission.Submitter
	logger    *zap.Logger
}

// Open loads the food and its favorite flag. A favorites failure does not
// prevent the page from opening; the flag then starts as false.
func Open(
	ctx context.Context,
	foodID int,
	catalog Catalog,
	favorites *favorite.Toggle,
	submitter *submission.Submitter,
	logger *zap.Logger,
) (*FoodDetails, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	food, err := catalog.GetFood(ctx, foodID)
	if err != nil {
		return nil, fmt.Errorf("load food %d: %w", foodID, err)
	}

	state := composition.New(*food)
	isFavorite, err := favorites.Load(ctx, foodID)
	if err != nil {
		logger.Warn("could not load favorites", zap.Int("food_id", foodID), zap.Error(err))
	}
	state.SetFavorite(isFavorite)

	return &FoodDetails{
		State:     state,
		favorites: favorites,
		submitter: submitter,
		logger:    logger,
	}, nil
}

func (p *FoodDetails) ToggleFavorite(ctx context.Context) favorite.ToggleResult {
	result := p.favorites.Toggle(ctx, p.State.Food())
	p.State.SetFavorite(result.IsFavorite)
	return result
}

func (p *FoodDetails) FavoriteIcon() string {
	return favorite.IconName(p.State.IsFavorite())
}

func (p *FoodDetails) Submit(ctx context.Context) (*domain.Order, error) {
	return p.submitter.Submit(ctx, p.State)
}
