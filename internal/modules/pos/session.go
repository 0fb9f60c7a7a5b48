package pos

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
	"github.com/labarberia/pos-backend/internal/modules/ledger"
)

// Catalog is the slice of the catalog collaborator the POS flow needs.
type Catalog interface {
	List(ctx context.Context, kind catalog.ItemKind, activeOnly bool) ([]*catalog.Item, error)
	GetByID(ctx context.Context, id string) (*catalog.Item, error)
	DecrementStock(ctx context.Context, id string, qty int) error
}

// Ledger records committed sales.
type Ledger interface {
	Create(ctx context.Context, tx *ledger.Transaction) error
}

// Session is one operator's live POS state: a catalog snapshot, a
// cart, and a checkout. Cart and checkout edits are synchronous;
// only the catalog load and the commit suspend. One session is live
// at a time (single register).
type Session struct {
	mu       sync.Mutex
	snapshot *catalog.Snapshot
	cart     *Cart
	checkout *Checkout
	catalog  Catalog
	ledger   Ledger
	lastTx   *ledger.Transaction
}

// NewSession builds a session over an already-loaded snapshot.
func NewSession(snapshot *catalog.Snapshot, cat Catalog, led Ledger) *Session {
	return &Session{
		snapshot: snapshot,
		cart:     NewCart(),
		checkout: NewCheckout(),
		catalog:  cat,
		ledger:   led,
	}
}

// FilterCatalog projects the session's snapshot by kind and name.
func (s *Session) FilterCatalog(kind catalog.ItemKind, query string) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Filter(kind, query)
}

// AddItem puts one unit of a snapshot item in the cart.
func (s *Session) AddItem(itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.snapshot.Get(itemID)
	if !ok {
		return catalog.ErrNotFound
	}
	if err := s.cart.AddItem(item); err != nil {
		return err
	}
	s.afterCartEdit()
	return nil
}

// AdjustQuantity applies delta to a cart line.
func (s *Session) AdjustQuantity(itemID uuid.UUID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.AdjustQuantity(itemID, delta); err != nil {
		return err
	}
	s.afterCartEdit()
	return nil
}

// RemoveItem deletes a cart line.
func (s *Session) RemoveItem(itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.RemoveItem(itemID); err != nil {
		return err
	}
	s.afterCartEdit()
	return nil
}

// afterCartEdit re-evaluates the checkout gate against the new total
// (a cash amount that covered the old total may not cover the new
// one) and keeps the freeze latch in step.
func (s *Session) afterCartEdit() {
	s.checkout.refreshGate(s.cart.Total())
	s.syncFreeze()
}

// Lines returns the cart lines.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Total returns the cart total.
func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// State returns the checkout state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.State()
}

// Checkout returns a copy of the checkout context for read access.
func (s *Session) Checkout() Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.checkout
}

// Change returns the cash change owed against the current total.
func (s *Session) Change() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.Change(s.cart.Total())
}

// LastTransaction returns the most recently committed sale, if any.
func (s *Session) LastTransaction() *ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTx
}

// BeginCheckout enters the checkout wizard.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.Begin(s.cart.Len())
}

// SelectParty records the responsible party.
func (s *Session) SelectParty(party ResponsibleParty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.checkout.SelectParty(party, s.cart.Total())
	s.syncFreeze()
	return err
}

// SelectPayment records the payment method.
func (s *Session) SelectPayment(method PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.checkout.SelectPayment(method, s.cart.Total())
	s.syncFreeze()
	return err
}

// SetReference records the transfer reference.
func (s *Session) SetReference(reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.checkout.SetReference(reference, s.cart.Total())
	s.syncFreeze()
	return err
}

// SetCashTendered records the cash received.
func (s *Session) SetCashTendered(amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.checkout.SetCashTendered(amount, s.cart.Total())
	s.syncFreeze()
	return err
}

// Cancel abandons the checkout, keeping the cart. Refused while a
// commit is in flight.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkout.Cancel(); err != nil {
		return err
	}
	s.syncFreeze()
	return nil
}

// syncFreeze keeps the cart frozen exactly while the checkout is in
// ReadyToCommit or Committing.
func (s *Session) syncFreeze() {
	switch s.checkout.State() {
	case StateReadyToCommit, StateCommitting:
		s.cart.Freeze()
	default:
		s.cart.Thaw()
	}
}

// Commit finalises the sale:
//
//  1. re-validate every product line against the collaborator's
//     current stock — a conflict aborts with no writes;
//  2. persist the ledger transaction;
//  3. deduct stock per product line.
//
// A deduction failure after step 2 does not roll the transaction
// back: the record of the sale must not be lost to a secondary
// bookkeeping failure. Those failures come back as a
// *StockReconciliationError alongside the recorded transaction.
func (s *Session) Commit(ctx context.Context) (*ledger.Transaction, error) {
	s.mu.Lock()
	total := s.cart.Total()
	if err := s.checkout.beginCommit(total); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.cart.Freeze()
	lines := s.cart.Lines()
	tx := s.buildTransaction(lines, total)
	s.mu.Unlock()

	// The lock is not held across collaborator calls; the Committing
	// latch and the frozen cart keep the session stable meanwhile.

	for _, line := range lines {
		if _, bounded := line.Item.StockLevel(); !bounded {
			continue
		}
		fresh, err := s.catalog.GetByID(ctx, line.Item.ID.String())
		if err != nil {
			return nil, s.fail(fmt.Errorf("re-read stock for %q: %w", line.Item.Name, err))
		}
		s.absorbFresh(*fresh)
		if !fresh.HasStock(line.Quantity) {
			level, _ := fresh.StockLevel()
			return nil, s.fail(fmt.Errorf("%w: %q has %d in stock, cart wants %d",
				ErrStockConflict, fresh.Name, level, line.Quantity))
		}
	}

	if err := s.ledger.Create(ctx, tx); err != nil {
		return nil, s.fail(fmt.Errorf("record transaction: %w", err))
	}

	failures := make(map[string]error)
	for _, line := range lines {
		if _, bounded := line.Item.StockLevel(); !bounded {
			continue
		}
		if err := s.catalog.DecrementStock(ctx, line.Item.ID.String(), line.Quantity); err != nil {
			failures[line.Item.Name] = err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.resolve(true)
	s.lastTx = tx
	s.cart.Thaw()
	s.cart.Clear()
	s.syncFreeze()
	if len(failures) > 0 {
		return tx, &StockReconciliationError{Transaction: tx, Failures: failures}
	}
	return tx, nil
}

// fail resolves an in-flight commit as Failed, keeping cart and
// checkout context for a retry.
func (s *Session) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.resolve(false)
	s.syncFreeze()
	return err
}

// absorbFresh folds a commit-time re-read back into the snapshot and
// the matching cart line, so a failed commit leaves the operator
// looking at current stock.
func (s *Session) absorbFresh(item catalog.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Refresh(item)
	if line, ok := s.cart.lines[item.ID]; ok {
		line.Item = item
	}
}

func (s *Session) buildTransaction(lines []Line, total float64) *ledger.Transaction {
	tx := &ledger.Transaction{
		ResponsibleParty: string(s.checkout.Party()),
		PaymentMethod:    string(s.checkout.Method()),
		Total:            round2(total),
	}
	if s.checkout.Method() == PaymentTransfer {
		tx.Reference = s.checkout.Reference()
	}
	for _, line := range lines {
		tx.Items = append(tx.Items, &ledger.TransactionItem{
			CatalogItemID: line.Item.ID,
			Name:          line.Item.Name,
			Kind:          string(line.Item.Kind),
			UnitPrice:     line.Item.Price,
			Quantity:      line.Quantity,
			Subtotal:      round2(line.Subtotal()),
		})
	}
	return tx
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
