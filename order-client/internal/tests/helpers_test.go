package tests

import (
	"gorestaurant/order-client/internal/domain"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// pasta is a food with two extras: Bacon at 3.00 and Queijo at 2.50.
func pasta() domain.Food {
	return domain.Food{
		ID:           1,
		Name:         "Ao molho",
		Description:  "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
		Price:        dec("10.00"),
		Category:     1,
		ImageURL:     "https://storage.example.com/ao_molho.png",
		ThumbnailURL: "https://storage.example.com/ao_molho_thumb.png",
		Available:    true,
		Extras: []domain.Extra{
			{ID: 1, Name: "Bacon", Value: dec("3.00")},
			{ID: 2, Name: "Queijo", Value: dec("2.50")},
		},
	}
}
