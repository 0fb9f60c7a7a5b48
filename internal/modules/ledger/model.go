package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the immutable record of a completed sale. Its items
// are a value snapshot of the cart as priced at commit time: later
// catalog edits never alter a recorded sale. The module exposes no
// update or delete operations.
type Transaction struct {
	ID               uuid.UUID          `json:"id"`
	ResponsibleParty string             `json:"responsible_party"`
	PaymentMethod    string             `json:"payment_method"`
	Reference        string             `json:"reference,omitempty"`
	Total            float64            `json:"total"`
	Items            []*TransactionItem `json:"items"`
	CreatedAt        time.Time          `json:"created_at"`
}

// TransactionItem is one sold line, frozen at commit time.
type TransactionItem struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	CatalogItemID uuid.UUID `json:"catalog_item_id"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	Subtotal      float64   `json:"subtotal"`
}
