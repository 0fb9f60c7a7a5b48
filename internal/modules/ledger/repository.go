package ledger

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested transaction does not exist.
var ErrNotFound = errors.New("transaction not found")

// Repository defines data access for the sales ledger.
type Repository interface {
	// Create persists the transaction and its items atomically,
	// assigning the id and timestamp at persistence time.
	Create(ctx context.Context, tx *Transaction) error

	GetByID(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context, limit int) ([]*Transaction, error)
}
