package pos

import (
	"errors"
	"fmt"

	"github.com/labarberia/pos-backend/internal/modules/ledger"
)

var (
	// ErrOutOfStock indicates an add would exceed a product's
	// available stock.
	ErrOutOfStock = errors.New("out of stock")

	// ErrLineNotFound indicates the cart holds no line for the item.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrCartFrozen indicates the cart cannot be edited while a
	// checkout is ready to commit or committing.
	ErrCartFrozen = errors.New("cart is frozen during commit")

	// ErrEmptyCart indicates checkout cannot start with zero lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutIncomplete indicates a required checkout field is
	// missing or invalid for the chosen payment method.
	ErrCheckoutIncomplete = errors.New("checkout is incomplete")

	// ErrInvalidState indicates the operation is not allowed in the
	// checkout's current state.
	ErrInvalidState = errors.New("invalid checkout state")

	// ErrCommitInFlight indicates a commit is already running.
	ErrCommitInFlight = errors.New("commit already in flight")

	// ErrStockConflict indicates a cart line no longer fits the
	// product's current stock; the commit was aborted with no writes.
	ErrStockConflict = errors.New("stock conflict")

	// ErrNoSession indicates no POS session is open.
	ErrNoSession = errors.New("no open POS session")
)

// StockReconciliationError reports stock deductions that failed after
// the transaction was already recorded. The sale is final; the listed
// items need a manual stock correction. It is never retried
// automatically.
type StockReconciliationError struct {
	Transaction *ledger.Transaction
	Failures    map[string]error // item name -> deduction error
}

func (e *StockReconciliationError) Error() string {
	return fmt.Sprintf("transaction %s recorded but %d stock deduction(s) failed; manual reconciliation required",
		e.Transaction.ID, len(e.Failures))
}
