package staff

import (
	"context"
	"errors"
)

// ErrNotFound indicates the requested barber does not exist.
var ErrNotFound = errors.New("barber not found")

// Repository defines data access for the barber roster.
type Repository interface {
	Create(ctx context.Context, b *Barber) error
	GetByID(ctx context.Context, id string) (*Barber, error)
	List(ctx context.Context) ([]*Barber, error)
	Delete(ctx context.Context, id string) error
}
