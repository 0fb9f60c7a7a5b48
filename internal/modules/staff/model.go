package staff

import (
	"time"

	"github.com/google/uuid"
)

// Barber is a roster entry. The roster is informational; the POS
// flow tags sales with its own closed responsible-party list.
type Barber struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BirthDate   string    `json:"birth_date"` // YYYY-MM-DD
	ChairNumber int       `json:"chair_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBarberRequest holds data for adding a barber to the roster.
type CreateBarberRequest struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	ChairNumber int    `json:"chair_number"`
}
