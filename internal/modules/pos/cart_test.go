package pos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
)

func product(name string, price float64, stock int) catalog.Item {
	return catalog.Item{
		ID:       uuid.New(),
		Name:     name,
		Kind:     catalog.KindProduct,
		Price:    price,
		Stock:    &stock,
		IsActive: true,
	}
}

func serviceItem(name string, price float64) catalog.Item {
	return catalog.Item{
		ID:       uuid.New(),
		Name:     name,
		Kind:     catalog.KindService,
		Price:    price,
		IsActive: true,
	}
}

func TestCartAddItemCreatesAndIncrements(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 15)

	require.NoError(t, cart.AddItem(pomade))
	require.NoError(t, cart.AddItem(pomade))

	lines := cart.Lines()
	require.Len(t, lines, 1, "repeated adds increment, not duplicate")
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, 400.0, cart.Total())
}

func TestCartAddItemOutOfStock(t *testing.T) {
	cart := NewCart()
	gone := product("Aceite para Barba", 220, 0)

	require.ErrorIs(t, cart.AddItem(gone), ErrOutOfStock)
	require.Equal(t, 0, cart.Len())
	require.Equal(t, 0.0, cart.Total())
}

func TestCartAddItemStockCeilingIsSilentNoOp(t *testing.T) {
	cart := NewCart()
	wax := product("Cera Mate", 180, 2)

	require.NoError(t, cart.AddItem(wax))
	require.NoError(t, cart.AddItem(wax))
	require.NoError(t, cart.AddItem(wax), "exceeding stock is refused, not an error")

	require.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestCartServiceHasNoCeiling(t *testing.T) {
	cart := NewCart()
	cut := serviceItem("Corte de Cabello", 150)

	for i := 0; i < 50; i++ {
		require.NoError(t, cart.AddItem(cut))
	}
	require.Equal(t, 50, cart.Lines()[0].Quantity)
	require.Equal(t, 7500.0, cart.Total())
}

func TestCartAdjustQuantity(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 5)
	require.NoError(t, cart.AddItem(pomade))

	require.NoError(t, cart.AdjustQuantity(pomade.ID, 3))
	require.Equal(t, 4, cart.Lines()[0].Quantity)

	// increase past stock leaves the line unchanged
	require.NoError(t, cart.AdjustQuantity(pomade.ID, 2))
	require.Equal(t, 4, cart.Lines()[0].Quantity)

	require.NoError(t, cart.AdjustQuantity(pomade.ID, -1))
	require.Equal(t, 3, cart.Lines()[0].Quantity)
}

func TestCartAdjustQuantityClampsToZeroAndRemoves(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 5)
	require.NoError(t, cart.AddItem(pomade))
	require.NoError(t, cart.AdjustQuantity(pomade.ID, 1))

	require.NoError(t, cart.AdjustQuantity(pomade.ID, -10))
	require.Equal(t, 0, cart.Len(), "a line at zero is removed, never kept")
	require.Equal(t, 0.0, cart.Total())
}

func TestCartAdjustQuantityUnknownLine(t *testing.T) {
	cart := NewCart()
	require.ErrorIs(t, cart.AdjustQuantity(uuid.New(), 1), ErrLineNotFound)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 5)
	cut := serviceItem("Corte de Cabello", 150)
	require.NoError(t, cart.AddItem(pomade))
	require.NoError(t, cart.AddItem(cut))

	require.NoError(t, cart.RemoveItem(pomade.ID))
	require.Equal(t, 1, cart.Len())
	require.Equal(t, cut.ID, cart.Lines()[0].Item.ID)

	require.ErrorIs(t, cart.RemoveItem(pomade.ID), ErrLineNotFound)
}

func TestCartTotalRecomputedEveryRead(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 15)
	cut := serviceItem("Corte de Barba", 120)

	require.NoError(t, cart.AddItem(pomade))
	require.Equal(t, 200.0, cart.Total())

	require.NoError(t, cart.AddItem(cut))
	require.Equal(t, 320.0, cart.Total())

	require.NoError(t, cart.AdjustQuantity(pomade.ID, 1))
	require.Equal(t, 520.0, cart.Total())

	require.NoError(t, cart.RemoveItem(cut.ID))
	require.Equal(t, 400.0, cart.Total())
}

func TestCartLinesKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	first := serviceItem("Corte de Cabello", 150)
	second := product("Pomada Premium", 200, 5)
	third := serviceItem("Limpieza Facial", 180)

	require.NoError(t, cart.AddItem(first))
	require.NoError(t, cart.AddItem(second))
	require.NoError(t, cart.AddItem(third))
	require.NoError(t, cart.AddItem(second))

	lines := cart.Lines()
	require.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
		[]uuid.UUID{lines[0].Item.ID, lines[1].Item.ID, lines[2].Item.ID})
}

func TestCartFrozenRefusesEdits(t *testing.T) {
	cart := NewCart()
	pomade := product("Pomada Premium", 200, 5)
	require.NoError(t, cart.AddItem(pomade))

	cart.Freeze()
	require.ErrorIs(t, cart.AddItem(pomade), ErrCartFrozen)
	require.ErrorIs(t, cart.AdjustQuantity(pomade.ID, 1), ErrCartFrozen)
	require.ErrorIs(t, cart.RemoveItem(pomade.ID), ErrCartFrozen)
	require.Equal(t, 1, cart.Lines()[0].Quantity)

	cart.Thaw()
	require.NoError(t, cart.AdjustQuantity(pomade.ID, 1))
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(product("Pomada Premium", 200, 5)))
	require.NoError(t, cart.AddItem(serviceItem("Corte de Cabello", 150)))

	cart.Clear()
	require.Equal(t, 0, cart.Len())
	require.Empty(t, cart.Lines())
	require.Equal(t, 0.0, cart.Total())
}
