// Package pricing holds the order total formula and the money formatter.
// Both the client and menu-svc price orders through it so a total shown on
// the detail page matches the one stored with the order.
package pricing

import "github.com/shopspring/decimal"

// Line is one priced add-on: a unit value taken Quantity times.
type Line struct {
	Value    decimal.Decimal
	Quantity int
}

// Total computes sum(line.Quantity * line.Value) + price * quantity.
// It is recomputed from scratch on every call.
func Total(price decimal.Decimal, quantity int, lines []Line) decimal.Decimal {
	extras := decimal.Zero
	for _, line := range lines {
		extras = extras.Add(line.Value.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return extras.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
}
