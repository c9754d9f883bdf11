package customers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/payd-hq/payd/internal/platform/db"
	"github.com/payd-hq/payd/internal/shared"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed customer repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) q(ctx context.Context) db.Querier {
	return db.From(ctx, r.pool)
}

func (r *repository) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	_, err := r.q(ctx).Exec(ctx, `
		INSERT INTO customers (id, surname, given_names, email, current_balance, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, customer.ID, customer.Surname, customer.GivenNames, customer.Email, db.Numeric(customer.CurrentBalance), customer.IsDeleted)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	row := r.q(ctx).QueryRow(ctx, `
		SELECT id, surname, given_names, email, current_balance, is_deleted
		FROM customers
		WHERE id = $1
	`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.q(ctx).Query(ctx, `
		SELECT id, surname, given_names, email, current_balance, is_deleted
		FROM customers
		ORDER BY surname, given_names
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Update writes display fields and balance. The deleted check reads the
// stored row inside the same statement scope so a stale caller copy cannot
// bypass the guard.
func (r *repository) Update(ctx context.Context, customer *Customer) (*Customer, error) {
	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE customers
		SET surname = $2, given_names = $3, email = $4, current_balance = $5
		WHERE id = $1 AND NOT is_deleted
	`, customer.ID, customer.Surname, customer.GivenNames, customer.Email, db.Numeric(customer.CurrentBalance))
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, r.missingOrDeleted(ctx, customer.ID)
	}
	return customer, nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE customers SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustBalance increments the stored balance atomically. The delta is
// applied against the authoritative value in SQL, so concurrent adjustments
// cannot lose updates regardless of caller interleaving.
func (r *repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE customers
		SET current_balance = current_balance + $2
		WHERE id = $1 AND NOT is_deleted
	`, id, db.Numeric(delta))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrDeleted(ctx, id)
	}
	return nil
}

// missingOrDeleted distinguishes the two zero-row causes of a guarded write.
func (r *repository) missingOrDeleted(ctx context.Context, id uuid.UUID) error {
	var isDeleted bool
	err := r.q(ctx).QueryRow(ctx, `SELECT is_deleted FROM customers WHERE id = $1`, id).Scan(&isDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if isDeleted {
		return shared.ErrRecordDeleted
	}
	return ErrNotFound
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	var balance pgtype.Numeric
	if err := row.Scan(&c.ID, &c.Surname, &c.GivenNames, &c.Email, &balance, &c.IsDeleted); err != nil {
		return nil, err
	}
	c.CurrentBalance = db.Decimal(balance)
	return &c, nil
}
