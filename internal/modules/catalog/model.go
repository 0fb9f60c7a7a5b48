package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind distinguishes services (unlimited availability) from
// physical products (finite stock).
type ItemKind string

const (
	KindService ItemKind = "SERVICE"
	KindProduct ItemKind = "PRODUCT"
)

// Item is a purchasable catalog entry. Stock is nil for services —
// a service has no stock ceiling. For products it is always >= 0.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      ItemKind  `json:"kind"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost,omitempty"` // products only, for margin reporting
	Brand     string    `json:"brand,omitempty"`
	Stock     *int      `json:"stock,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasStock reports whether qty units can be sold. Services and items
// without a stock ceiling always have stock.
func (i *Item) HasStock(qty int) bool {
	if i.Kind != KindProduct || i.Stock == nil {
		return true
	}
	return *i.Stock >= qty
}

// StockLevel returns the remaining stock and whether the item carries
// a stock ceiling at all.
func (i *Item) StockLevel() (int, bool) {
	if i.Kind != KindProduct || i.Stock == nil {
		return 0, false
	}
	return *i.Stock, true
}
