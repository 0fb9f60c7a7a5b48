package pos

import (
	"fmt"
	"strings"
)

// PaymentMethod represents how a sale is paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// ParsePaymentMethod normalises a client-supplied payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch method {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return method, nil
	}
	return "", fmt.Errorf("invalid payment method: %s (allowed: CASH, CARD, TRANSFER)", s)
}

// ResponsibleParty is the operational tag for who rang up the sale.
// It is a fixed closed set, deliberately separate from the staff
// roster: roster edits must never invalidate historical transactions.
type ResponsibleParty string

const (
	PartyDemo   ResponsibleParty = "Barbero Demo"
	PartyStaff1 ResponsibleParty = "Personal 1"
	PartyStaff2 ResponsibleParty = "Personal 2"
)

// ResponsibleParties returns the closed list of valid parties.
func ResponsibleParties() []ResponsibleParty {
	return []ResponsibleParty{PartyDemo, PartyStaff1, PartyStaff2}
}

// ParseResponsibleParty validates a client-supplied party against the
// closed list.
func ParseResponsibleParty(s string) (ResponsibleParty, error) {
	party := ResponsibleParty(strings.TrimSpace(s))
	for _, p := range ResponsibleParties() {
		if p == party {
			return party, nil
		}
	}
	return "", fmt.Errorf("unknown responsible party: %s", s)
}
