package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines roster business logic.
type Service interface {
	AddBarber(ctx context.Context, req CreateBarberRequest) (*Barber, error)
	GetBarber(ctx context.Context, id string) (*Barber, error)
	ListBarbers(ctx context.Context) ([]*Barber, error)
	RemoveBarber(ctx context.Context, id string) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) AddBarber(ctx context.Context, req CreateBarberRequest) (*Barber, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", req.BirthDate); err != nil {
			return nil, fmt.Errorf("invalid birth_date (expected YYYY-MM-DD): %w", err)
		}
	}
	if req.ChairNumber < 0 {
		return nil, fmt.Errorf("chair_number cannot be negative")
	}
	b := &Barber{
		ID:          uuid.New(),
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		ChairNumber: req.ChairNumber,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBarber(ctx context.Context, id string) (*Barber, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListBarbers(ctx context.Context) ([]*Barber, error) {
	return s.repo.List(ctx)
}

func (s *service) RemoveBarber(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
