package catalog

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested catalog item does not exist.
var ErrNotFound = errors.New("catalog item not found")

// ErrInsufficientStock indicates a stock decrement would take a
// product below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// Repository defines data access for catalog items.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, kind ItemKind, activeOnly bool) ([]*Item, error)
	Update(ctx context.Context, item *Item) error

	// DecrementStock atomically deducts qty from a product's stock,
	// refusing to go below zero (ErrInsufficientStock).
	DecrementStock(ctx context.Context, id string, qty int) error

	Count(ctx context.Context) (int, error)
}
