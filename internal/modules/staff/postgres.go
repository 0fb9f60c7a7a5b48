package staff

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, b *Barber) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO barbers (id, name, birth_date, chair_number)
		VALUES ($1,$2,$3,$4)`,
		b.ID, b.Name, b.BirthDate, b.ChairNumber)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Barber, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	b, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT id,name,birth_date,chair_number,created_at,updated_at
		FROM barbers WHERE id=$1`, uid))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Barber, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,name,birth_date,chair_number,created_at,updated_at
		FROM barbers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var barbers []*Barber
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		barbers = append(barbers, b)
	}
	return barbers, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM barbers WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Barber, error) {
	b := &Barber{}
	err := row.Scan(&b.ID, &b.Name, &b.BirthDate, &b.ChairNumber, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}
