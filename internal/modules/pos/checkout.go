package pos

import "strings"

// State is the checkout wizard's position.
type State string

const (
	StateIdle              State = "IDLE"
	StateCollectingParty   State = "COLLECTING_PARTY"
	StateCollectingPayment State = "COLLECTING_PAYMENT"
	StateReadyToCommit     State = "READY_TO_COMMIT"
	StateCommitting        State = "COMMITTING"
	StateSuccess           State = "SUCCESS"
	StateFailed            State = "FAILED"
)

// Checkout collects the attributes required to finalise a sale:
// responsible party, payment method, and the method-specific payload
// (transfer reference or cash tendered). The advance gate to
// ReadyToCommit is re-evaluated on every field change; there is no
// manual validate step.
type Checkout struct {
	state        State
	party        ResponsibleParty
	method       PaymentMethod
	reference    string
	cashTendered float64
}

// NewCheckout returns an idle checkout.
func NewCheckout() *Checkout { return &Checkout{state: StateIdle} }

func (c *Checkout) State() State            { return c.state }
func (c *Checkout) Party() ResponsibleParty { return c.party }
func (c *Checkout) Method() PaymentMethod   { return c.method }
func (c *Checkout) Reference() string       { return c.reference }
func (c *Checkout) CashTendered() float64   { return c.cashTendered }

// Begin enters the wizard from a non-empty cart.
func (c *Checkout) Begin(cartLen int) error {
	if c.state != StateIdle {
		return ErrInvalidState
	}
	if cartLen == 0 {
		return ErrEmptyCart
	}
	c.state = StateCollectingParty
	return nil
}

// SelectParty records who is responsible for the sale and advances
// past CollectingParty.
func (c *Checkout) SelectParty(party ResponsibleParty, total float64) error {
	switch c.state {
	case StateCollectingParty, StateCollectingPayment, StateReadyToCommit:
	default:
		return ErrInvalidState
	}
	c.party = party
	if c.state == StateCollectingParty {
		c.state = StateCollectingPayment
	}
	c.refreshGate(total)
	return nil
}

// SelectPayment records the payment method.
func (c *Checkout) SelectPayment(method PaymentMethod, total float64) error {
	if err := c.requirePaymentStage(); err != nil {
		return err
	}
	c.method = method
	c.refreshGate(total)
	return nil
}

// SetReference records the transfer reference.
func (c *Checkout) SetReference(reference string, total float64) error {
	if err := c.requirePaymentStage(); err != nil {
		return err
	}
	c.reference = strings.TrimSpace(reference)
	c.refreshGate(total)
	return nil
}

// SetCashTendered records the cash amount received.
func (c *Checkout) SetCashTendered(amount float64, total float64) error {
	if err := c.requirePaymentStage(); err != nil {
		return err
	}
	c.cashTendered = amount
	c.refreshGate(total)
	return nil
}

func (c *Checkout) requirePaymentStage() error {
	switch c.state {
	case StateCollectingPayment, StateReadyToCommit:
		return nil
	default:
		return ErrInvalidState
	}
}

// Change is the cash change owed, derived and never stored.
func (c *Checkout) Change(total float64) float64 {
	if c.method != PaymentCash {
		return 0
	}
	if change := c.cashTendered - total; change > 0 {
		return change
	}
	return 0
}

// complete reports whether every required field for the chosen
// payment method is present and valid against the given total.
func (c *Checkout) complete(total float64) bool {
	if c.party == "" || c.method == "" {
		return false
	}
	switch c.method {
	case PaymentTransfer:
		return c.reference != ""
	case PaymentCash:
		return c.cashTendered >= total
	}
	return true
}

// refreshGate moves between CollectingPayment and ReadyToCommit as
// field validity changes.
func (c *Checkout) refreshGate(total float64) {
	switch {
	case c.state == StateCollectingPayment && c.complete(total):
		c.state = StateReadyToCommit
	case c.state == StateReadyToCommit && !c.complete(total):
		c.state = StateCollectingPayment
	}
}

// beginCommit latches the wizard into Committing. A commit may start
// from ReadyToCommit, or from Failed to retry with the retained
// context; a second commit while one is in flight is refused.
func (c *Checkout) beginCommit(total float64) error {
	switch c.state {
	case StateCommitting:
		return ErrCommitInFlight
	case StateReadyToCommit, StateFailed:
	default:
		return ErrInvalidState
	}
	if !c.complete(total) {
		return ErrCheckoutIncomplete
	}
	c.state = StateCommitting
	return nil
}

// resolve leaves Committing for a terminal state.
func (c *Checkout) resolve(committed bool) {
	if c.state != StateCommitting {
		return
	}
	if committed {
		c.state = StateSuccess
	} else {
		c.state = StateFailed
	}
}

// Cancel discards the context and returns to Idle. It is refused only
// while a commit is in flight; there is no cancelling a requested
// commit.
func (c *Checkout) Cancel() error {
	if c.state == StateCommitting {
		return ErrCommitInFlight
	}
	*c = Checkout{state: StateIdle}
	return nil
}
