package composition

import "gorestaurant/order-client/internal/domain"

// ExtraLine is one extra offered for the food together with the chosen quantity.
type ExtraLine struct {
	domain.Extra
	Quantity int
}

// NewLines builds one zero-quantity line per extra, keeping catalog order.
func NewLines(extras []domain.Extra) []ExtraLine {
	lines := make([]ExtraLine, len(extras))
	for i, extra := range extras {
		lines[i] = ExtraLine{Extra: extra}
	}
	return lines
}

// IncrementLine returns a copy of lines with the matching extra raised by one.
// An unknown id leaves the collection untouched and reports false.
func IncrementLine(lines []ExtraLine, id int) ([]ExtraLine, bool) {
	idx := indexOf(lines, id)
	if idx < 0 {
		return lines, false
	}
	next := clone(lines)
	next[idx].Quantity++
	return next, true
}

// DecrementLine returns a copy of lines with the matching extra lowered by one.
// Quantities never go below zero; a rejected decrement returns the input as is.
func DecrementLine(lines []ExtraLine, id int) ([]ExtraLine, bool) {
	idx := indexOf(lines, id)
	if idx < 0 || lines[idx].Quantity-1 < 0 {
		return lines, false
	}
	next := clone(lines)
	next[idx].Quantity--
	return next, true
}

func indexOf(lines []ExtraLine, id int) int {
	for i := range lines {
		if lines[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(lines []ExtraLine) []ExtraLine {
	next := make([]ExtraLine, len(lines))
	copy(next, lines)
	return next
}
