package pos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckoutBegin(t *testing.T) {
	ck := NewCheckout()
	require.ErrorIs(t, ck.Begin(0), ErrEmptyCart, "empty cart refuses entry")
	require.Equal(t, StateIdle, ck.State())

	require.NoError(t, ck.Begin(2))
	require.Equal(t, StateCollectingParty, ck.State())

	require.ErrorIs(t, ck.Begin(2), ErrInvalidState)
}

func TestCheckoutPartyRequiredBeforePayment(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))

	require.ErrorIs(t, ck.SelectPayment(PaymentCard, 100), ErrInvalidState)

	require.NoError(t, ck.SelectParty(PartyStaff1, 100))
	require.Equal(t, StateCollectingPayment, ck.State())
}

func TestCheckoutCardGate(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyDemo, 250))

	require.NoError(t, ck.SelectPayment(PaymentCard, 250))
	require.Equal(t, StateReadyToCommit, ck.State(), "card needs no extra payload")
}

func TestCheckoutTransferGate(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyDemo, 250))
	require.NoError(t, ck.SelectPayment(PaymentTransfer, 250))
	require.Equal(t, StateCollectingPayment, ck.State(), "transfer without reference cannot advance")

	require.NoError(t, ck.SetReference("   ", 250))
	require.Equal(t, StateCollectingPayment, ck.State(), "blank reference does not count")

	require.NoError(t, ck.SetReference("123456", 250))
	require.Equal(t, StateReadyToCommit, ck.State())

	// clearing the reference re-evaluates the gate and drops back
	require.NoError(t, ck.SetReference("", 250))
	require.Equal(t, StateCollectingPayment, ck.State())
}

func TestCheckoutCashGate(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyDemo, 400))
	require.NoError(t, ck.SelectPayment(PaymentCash, 400))

	require.NoError(t, ck.SetCashTendered(300, 400))
	require.Equal(t, StateCollectingPayment, ck.State(), "tendered below total cannot advance")

	require.NoError(t, ck.SetCashTendered(500, 400))
	require.Equal(t, StateReadyToCommit, ck.State())
	require.Equal(t, 100.0, ck.Change(400))

	require.NoError(t, ck.SetCashTendered(400, 400))
	require.Equal(t, StateReadyToCommit, ck.State(), "exact cash is enough")
	require.Equal(t, 0.0, ck.Change(400))
}

func TestCheckoutChangeNeverNegativeAndCashOnly(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyDemo, 400))
	require.NoError(t, ck.SelectPayment(PaymentCash, 400))
	require.NoError(t, ck.SetCashTendered(300, 400))
	require.Equal(t, 0.0, ck.Change(400))

	require.NoError(t, ck.SelectPayment(PaymentCard, 400))
	require.Equal(t, 0.0, ck.Change(400), "change is a cash concept")
}

func TestCheckoutCommitLatch(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyDemo, 100))

	require.ErrorIs(t, ck.beginCommit(100), ErrInvalidState, "no commit before the gate")

	require.NoError(t, ck.SelectPayment(PaymentCard, 100))
	require.NoError(t, ck.beginCommit(100))
	require.Equal(t, StateCommitting, ck.State())

	require.ErrorIs(t, ck.beginCommit(100), ErrCommitInFlight)
	require.ErrorIs(t, ck.Cancel(), ErrCommitInFlight, "no cancelling once committing")

	ck.resolve(false)
	require.Equal(t, StateFailed, ck.State())
	require.Equal(t, PartyDemo, ck.Party(), "failed commit keeps the context for retry")

	require.NoError(t, ck.beginCommit(100), "retry from Failed")
	ck.resolve(true)
	require.Equal(t, StateSuccess, ck.State())
}

func TestCheckoutCancelDiscardsContext(t *testing.T) {
	ck := NewCheckout()
	require.NoError(t, ck.Begin(1))
	require.NoError(t, ck.SelectParty(PartyStaff2, 100))
	require.NoError(t, ck.SelectPayment(PaymentTransfer, 100))
	require.NoError(t, ck.SetReference("ref-1", 100))

	require.NoError(t, ck.Cancel())
	require.Equal(t, StateIdle, ck.State())
	require.Empty(t, ck.Party())
	require.Empty(t, ck.Method())
	require.Empty(t, ck.Reference())
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("cash")
	require.NoError(t, err)
	require.Equal(t, PaymentCash, method)

	_, err = ParsePaymentMethod("BARTER")
	require.Error(t, err)
}

func TestParseResponsibleParty(t *testing.T) {
	party, err := ParseResponsibleParty("Personal 1")
	require.NoError(t, err)
	require.Equal(t, PartyStaff1, party)

	_, err = ParseResponsibleParty("Nobody")
	require.Error(t, err)
}
