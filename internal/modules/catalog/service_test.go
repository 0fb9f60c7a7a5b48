package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	order []uuid.UUID
	items map[uuid.UUID]*Item
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uuid.UUID]*Item)}
}

func (f *fakeRepo) Create(ctx context.Context, item *Item) error {
	copied := *item
	f.order = append(f.order, item.ID)
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	item, ok := f.items[uid]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, kind ItemKind, activeOnly bool) ([]*Item, error) {
	var out []*Item
	for _, id := range f.order {
		item := f.items[id]
		if kind != "" && item.Kind != kind {
			continue
		}
		if activeOnly && !item.IsActive {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, item *Item) error {
	if _, ok := f.items[item.ID]; !ok {
		return ErrNotFound
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	item, ok := f.items[uid]
	if !ok || item.Kind != KindProduct || item.Stock == nil || *item.Stock < qty {
		return ErrInsufficientStock
	}
	*item.Stock -= qty
	return nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) { return len(f.items), nil }

func TestCreateItemValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemRequest{Kind: "SERVICE", Price: 100})
	require.Error(t, err, "name is required")

	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Corte", Kind: "SERVICE", Price: -1})
	require.Error(t, err, "negative price refused")

	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Corte", Kind: "OTHER", Price: 100})
	require.Error(t, err, "unknown kind refused")

	stock := 5
	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Corte", Kind: "SERVICE", Price: 100, Stock: &stock})
	require.Error(t, err, "services never carry a stock ceiling")

	negative := -1
	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Cera", Kind: "PRODUCT", Price: 100, Stock: &negative})
	require.Error(t, err, "negative stock refused")
}

func TestCreateItemDefaults(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	service, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Corte", Kind: "service", Price: 150})
	require.NoError(t, err)
	require.Equal(t, KindService, service.Kind)
	require.Nil(t, service.Stock)
	require.True(t, service.IsActive)

	prod, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Cera", Kind: "PRODUCT", Price: 180})
	require.NoError(t, err)
	require.NotNil(t, prod.Stock)
	require.Equal(t, 0, *prod.Stock, "products default to zero stock")
}

func TestUpdateItemCannotChangeKind(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Corte", Kind: "SERVICE", Price: 150})
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, item.ID.String(), CreateItemRequest{Name: "Corte", Kind: "PRODUCT", Price: 150})
	require.Error(t, err)

	updated, err := svc.UpdateItem(ctx, item.ID.String(), CreateItemRequest{Name: "Corte Clásico", Kind: "SERVICE", Price: 170})
	require.NoError(t, err)
	require.Equal(t, "Corte Clásico", updated.Name)
	require.Equal(t, 170.0, updated.Price)
}

func TestListItemsNameFilter(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Corte de Cabello", Kind: "SERVICE", Price: 150})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Pomada Premium", Kind: "PRODUCT", Price: 200})
	require.NoError(t, err)

	all, err := svc.ListItems(ctx, "", "", false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	matches, err := svc.ListItems(ctx, "", "pomada", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Pomada Premium", matches[0].Name)

	matches, err = svc.ListItems(ctx, KindService, "pomada", false)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestSeedIfEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedIfEmpty(ctx))
	n, _ := repo.Count(ctx)
	require.Equal(t, len(SeedItems()), n)

	// a primed catalog is left alone
	require.NoError(t, svc.SeedIfEmpty(ctx))
	after, _ := repo.Count(ctx)
	require.Equal(t, n, after)
}

func TestFakeRepoDecrementGuard(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	stock := 2
	item := &Item{ID: uuid.New(), Name: "Cera", Kind: KindProduct, Price: 180, Stock: &stock}
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.DecrementStock(ctx, item.ID.String(), 2))
	require.ErrorIs(t, repo.DecrementStock(ctx, item.ID.String(), 1), ErrInsufficientStock,
		"decrement never drives stock below zero")
}
