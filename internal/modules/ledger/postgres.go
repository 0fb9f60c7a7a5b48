package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the transaction and all its items inside a single
// database transaction.
func (r *postgresRepo) Create(ctx context.Context, t *Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now().UTC()

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx, `
		INSERT INTO transactions
		  (id, responsible_party, payment_method, reference, total, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.ResponsibleParty, t.PaymentMethod, t.Reference, t.Total, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	for _, item := range t.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.TransactionID = t.ID
		_, err = dbTx.ExecContext(ctx, `
			INSERT INTO transaction_items
			  (id, transaction_id, catalog_item_id, name, kind, unit_price, quantity, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			item.ID, t.ID, item.CatalogItemID, item.Name, item.Kind,
			item.UnitPrice, item.Quantity, item.Subtotal)
		if err != nil {
			return fmt.Errorf("insert transaction_item: %w", err)
		}
	}

	return dbTx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Transaction, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	t, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT id,responsible_party,payment_method,reference,total,created_at
		FROM transactions WHERE id=$1`, uid))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Items, err = r.listItems(ctx, t.ID)
	return t, err
}

func (r *postgresRepo) List(ctx context.Context, limit int) ([]*Transaction, error) {
	query := `SELECT id,responsible_party,payment_method,reference,total,created_at
	          FROM transactions ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range txs {
		if t.Items, err = r.listItems(ctx, t.ID); err != nil {
			return nil, err
		}
	}
	return txs, nil
}

func (r *postgresRepo) listItems(ctx context.Context, txID uuid.UUID) ([]*TransactionItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,transaction_id,catalog_item_id,name,kind,unit_price,quantity,subtotal
		FROM transaction_items WHERE transaction_id=$1`, txID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*TransactionItem
	for rows.Next() {
		item := &TransactionItem{}
		err := rows.Scan(&item.ID, &item.TransactionID, &item.CatalogItemID,
			&item.Name, &item.Kind, &item.UnitPrice, &item.Quantity, &item.Subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Transaction, error) {
	t := &Transaction{}
	var reference sql.NullString
	err := row.Scan(&t.ID, &t.ResponsibleParty, &t.PaymentMethod,
		&reference, &t.Total, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if reference.Valid {
		t.Reference = reference.String
	}
	return t, nil
}
