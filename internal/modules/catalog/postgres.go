package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_items
		  (id, name, kind, price, cost, brand, stock, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		item.ID, item.Name, item.Kind, item.Price, item.Cost,
		item.Brand, item.Stock, item.IsActive)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	item, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT id,name,kind,price,cost,brand,stock,is_active,created_at,updated_at
		FROM catalog_items WHERE id=$1`, uid))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return item, err
}

func (r *postgresRepo) List(ctx context.Context, kind ItemKind, activeOnly bool) ([]*Item, error) {
	query := `SELECT id,name,kind,price,cost,brand,stock,is_active,created_at,updated_at
	          FROM catalog_items WHERE 1=1`
	args := []interface{}{}
	if kind != "" {
		query += ` AND kind=$1`
		args = append(args, kind)
	}
	if activeOnly {
		query += ` AND is_active=true`
	}
	query += ` ORDER BY kind, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE catalog_items
		SET name=$1, price=$2, cost=$3, brand=$4, stock=$5, is_active=$6, updated_at=$7
		WHERE id=$8`,
		item.Name, item.Price, item.Cost, item.Brand, item.Stock,
		item.IsActive, time.Now(), item.ID)
	return err
}

// DecrementStock deducts qty in a single guarded UPDATE so concurrent
// sales can never drive stock negative (no read-modify-write).
func (r *postgresRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE catalog_items
		SET stock = stock - $1, updated_at = NOW()
		WHERE id=$2 AND kind=$3 AND stock >= $1`,
		qty, uid, KindProduct)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&n)
	return n, err
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Item, error) {
	item := &Item{}
	var brand sql.NullString
	var stock sql.NullInt64
	err := row.Scan(&item.ID, &item.Name, &item.Kind, &item.Price, &item.Cost,
		&brand, &stock, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if brand.Valid {
		item.Brand = brand.String
	}
	if stock.Valid {
		level := int(stock.Int64)
		item.Stock = &level
	}
	return item, nil
}
