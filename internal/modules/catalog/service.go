package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	ListItems(ctx context.Context, kind ItemKind, query string, activeOnly bool) ([]*Item, error)
	UpdateItem(ctx context.Context, id string, req CreateItemRequest) (*Item, error)

	// SeedIfEmpty primes an empty catalog with the default shop items.
	SeedIfEmpty(ctx context.Context) error
}

// CreateItemRequest holds the data for creating or updating a catalog item.
type CreateItemRequest struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost,omitempty"`
	Brand string  `json:"brand,omitempty"`
	Stock *int    `json:"stock,omitempty"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	kind, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	item := &Item{
		ID:       uuid.New(),
		Name:     req.Name,
		Kind:     kind,
		Price:    req.Price,
		Cost:     req.Cost,
		Brand:    req.Brand,
		Stock:    req.Stock,
		IsActive: true,
	}
	if kind == KindProduct && item.Stock == nil {
		item.Stock = intPtr(0)
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListItems(ctx context.Context, kind ItemKind, query string, activeOnly bool) ([]*Item, error) {
	items, err := s.repo.List(ctx, kind, activeOnly)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}
	var filtered []*Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, req CreateItemRequest) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	kind, err := validateRequest(req)
	if err != nil {
		return nil, err
	}
	if kind != item.Kind {
		return nil, fmt.Errorf("kind of an existing item cannot change (current: %s)", item.Kind)
	}
	item.Name = req.Name
	item.Price = req.Price
	item.Cost = req.Cost
	item.Brand = req.Brand
	if item.Kind == KindProduct && req.Stock != nil {
		item.Stock = req.Stock
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) SeedIfEmpty(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, item := range SeedItems() {
		if err := s.repo.Create(ctx, item); err != nil {
			return fmt.Errorf("seed %q: %w", item.Name, err)
		}
	}
	return nil
}

func validateRequest(req CreateItemRequest) (ItemKind, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return "", fmt.Errorf("price cannot be negative")
	}
	kind := ItemKind(strings.ToUpper(req.Kind))
	switch kind {
	case KindService:
		if req.Stock != nil {
			return "", fmt.Errorf("services do not carry stock")
		}
	case KindProduct:
		if req.Stock != nil && *req.Stock < 0 {
			return "", fmt.Errorf("stock cannot be negative")
		}
	default:
		return "", fmt.Errorf("invalid kind: %s (allowed: SERVICE, PRODUCT)", req.Kind)
	}
	return kind, nil
}
