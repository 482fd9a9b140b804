package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderPlaced = "order_placed"

// OrderEvent is the message menu-svc publishes once an order is stored.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
