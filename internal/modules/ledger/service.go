package ledger

import "context"

// Service exposes read access to the sales ledger. Writing happens
// only through the POS commit flow; nothing else may create, mutate,
// or delete a transaction.
type Service interface {
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListTransactions(ctx context.Context, limit int) ([]*Transaction, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTransactions(ctx context.Context, limit int) ([]*Transaction, error) {
	return s.repo.List(ctx, limit)
}
