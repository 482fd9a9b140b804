package composition

import (
	"gorestaurant/order-client/internal/domain"
	"gorestaurant/pricing"

	"github.com/shopspring/decimal"
)

// State is the order being composed on a food detail page. It belongs to a
// single page visit and is not safe for concurrent use.
type State struct {
	food         domain.Food
	baseQuantity int
	extras       []ExtraLine
	isFavorite   bool
	version      uint64
}

func New(food domain.Food) *State {
	return &State{
		food:         food,
		baseQuantity: 1,
		extras:       NewLines(food.Extras),
	}
}

func (s *State) Food() domain.Food { return s.food }

func (s *State) BaseQuantity() int { return s.baseQuantity }

// Extras returns the current lines. Mutations replace the slice instead of
// writing into it, so a previously returned slice keeps its values.
func (s *State) Extras() []ExtraLine { return s.extras }

func (s *State) IsFavorite() bool { return s.isFavorite }

func (s *State) SetFavorite(isFavorite bool) {
	if s.isFavorite == isFavorite {
		return
	}
	s.isFavorite = isFavorite
	s.version++
}

// Version increases on every accepted mutation.
func (s *State) Version() uint64 { return s.version }

func (s *State) IncrementExtra(id int) bool {
	next, changed := IncrementLine(s.extras, id)
	return s.apply(next, changed)
}

func (s *State) DecrementExtra(id int) bool {
	next, changed := DecrementLine(s.extras, id)
	return s.apply(next, changed)
}

func (s *State) apply(next []ExtraLine, changed bool) bool {
	if changed {
		s.extras = next
		s.version++
	}
	return changed
}

func (s *State) IncrementFood() bool {
	s.baseQuantity++
	s.version++
	return true
}

// DecrementFood keeps the base quantity at one or more.
func (s *State) DecrementFood() bool {
	if s.baseQuantity-1 < 1 {
		return false
	}
	s.baseQuantity--
	s.version++
	return true
}

// Total is derived from the current lines on every call.
func (s *State) Total() decimal.Decimal {
	lines := make([]pricing.Line, len(s.extras))
	for i, extra := range s.extras {
		lines[i] = pricing.Line{Value: extra.Value, Quantity: extra.Quantity}
	}
	return pricing.Total(s.food.Price, s.baseQuantity, lines)
}

func (s *State) FormattedTotal() string {
	return pricing.FormatValue(s.Total())
}

// FormattedPrice is the unit price of the food for display.
func (s *State) FormattedPrice() string {
	return pricing.FormatValue(s.food.Price)
}

// OrderRequest snapshots the composition for submission. Extras with a zero
// quantity are left out.
func (s *State) OrderRequest() domain.OrderRequest {
	extras := make([]domain.OrderExtra, 0, len(s.extras))
	for _, line := range s.extras {
		if line.Quantity == 0 {
			continue
		}
		extras = append(extras, domain.OrderExtra{
			ID:       line.ID,
			Name:     line.Name,
			Value:    line.Value,
			Quantity: line.Quantity,
		})
	}

	return domain.OrderRequest{
		Name:         s.food.Name,
		Description:  s.food.Description,
		Price:        s.food.Price,
		Category:     s.food.Category,
		ImageURL:     s.food.ImageURL,
		ThumbnailURL: s.food.ThumbnailURL,
		Quantity:     s.baseQuantity,
		Extras:       extras,
		Total:        s.Total(),
	}
}
