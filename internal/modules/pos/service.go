package pos

import (
	"context"
	"fmt"
	"sync"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
)

// Service manages the register's POS session. This is a single
// register: at most one session is live, and opening a new one
// replaces it (the old cart is destroyed, matching navigation away
// from the POS view).
type Service interface {
	OpenSession(ctx context.Context) (*Session, error)
	Session() (*Session, error)
	CloseSession()
}

type service struct {
	mu      sync.Mutex
	catalog Catalog
	ledger  Ledger
	session *Session
}

// NewService creates a POS service over the catalog and ledger
// collaborators.
func NewService(cat Catalog, led Ledger) Service {
	return &service{catalog: cat, ledger: led}
}

func (s *service) OpenSession(ctx context.Context) (*Session, error) {
	items, err := s.catalog.List(ctx, "", true)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	session := NewSession(catalog.NewSnapshot(items), s.catalog, s.ledger)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return session, nil
}

func (s *service) Session() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, ErrNoSession
	}
	return s.session, nil
}

func (s *service) CloseSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}
