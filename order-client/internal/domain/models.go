package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Food struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int             `json:"category"`
	ImageURL     string          `json:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Available    bool            `json:"available"`
	Extras       []Extra         `json:"extras"`
}

// Extra is an add-on offered for a food, as defined by the catalog.
type Extra struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Favorite is the favorites store payload: a food without its extras.
type Favorite struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int             `json:"category"`
	ImageURL     string          `json:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Available    bool            `json:"available"`
}

func (f Food) Favorite() Favorite {
	return Favorite{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		Category:     f.Category,
		ImageURL:     f.ImageURL,
		ThumbnailURL: f.ThumbnailURL,
		Available:    f.Available,
	}
}

type OrderExtra struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

// OrderRequest carries no id: the order store assigns one.
type OrderRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int             `json:"category"`
	ImageURL     string          `json:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Quantity     int             `json:"quantity"`
	Extras       []OrderExtra    `json:"extras"`
	Total        decimal.Decimal `json:"total"`
}

type Order struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     int             `json:"category"`
	ImageURL     string          `json:"image_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Quantity     int             `json:"quantity"`
	Extras       []OrderExtra    `json:"extras"`
	Total        decimal.Decimal `json:"total"`
	QRCode       string          `json:"qr_code,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
