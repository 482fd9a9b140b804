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

type Extra struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Favorite is a food saved by the user, stored without its extras.
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

type OrderExtra struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
