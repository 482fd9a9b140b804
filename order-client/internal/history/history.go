package history

import (
	"context"
	"fmt"

	"gorestaurant/order-client/internal/domain"
	"gorestaurant/pricing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderLister interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// Entry is an order prepared for the history list.
type Entry struct {
	domain.Order
	TotalOrderValue string
	FormattedPrice  string
}

// Total prices an order with the same formula the composition page uses,
// ignoring the total stored alongside it.
func Total(order domain.Order) decimal.Decimal {
	lines := make([]pricing.Line, len(order.Extras))
	for i, extra := range order.Extras {
		lines[i] = pricing.Line{Value: extra.Value, Quantity: extra.Quantity}
	}
	return pricing.Total(order.Price, order.Quantity, lines)
}

func Summarize(order domain.Order) Entry {
	return Entry{
		Order:           order,
		TotalOrderValue: pricing.FormatValue(Total(order)),
		FormattedPrice:  pricing.FormatValue(order.Price),
	}
}

// Loader keeps the last fetched history. Hosts call Reload every time the
// history view gains focus.
type Loader struct {
	store   OrderLister
	logger  *zap.Logger
	entries []Entry
}

func NewLoader(store OrderLister, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{store: store, logger: logger}
}

// Reload replaces the entries with a fresh fetch. On failure the previous
// entries are kept.
func (l *Loader) Reload(ctx context.Context) ([]Entry, error) {
	orders, err := l.store.ListOrders(ctx)
	if err != nil {
		l.logger.Warn("order history reload failed", zap.Error(err))
		return l.entries, fmt.Errorf("list orders: %w", err)
	}

	entries := make([]Entry, len(orders))
	for i, order := range orders {
		entries[i] = Summarize(order)
	}
	l.entries = entries
	return entries, nil
}

func (l *Loader) Entries() []Entry { return l.entries }

// Spent is the sum of every loaded order total.
func (l *Loader) Spent() decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range l.entries {
		sum = sum.Add(Total(entry.Order))
	}
	return sum
}
