package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payd-hq/payd/internal/platform/db"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed payment store.
func NewRepository(pool *pgxpool.Pool) Store {
	return &repository{pool: pool}
}

func (r *repository) q(ctx context.Context) db.Querier {
	return db.From(ctx, r.pool)
}

func (r *repository) Create(ctx context.Context, payment *Payment) (*Payment, error) {
	_, err := r.q(ctx).Exec(ctx, `
		INSERT INTO payments (
			id, amount, payment_date_utc, requested_date_utc, processed_date_utc,
			status, comment, customer_id, approver_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		payment.ID,
		db.Numeric(payment.Amount),
		payment.PaymentDateUTC,
		payment.RequestedDateUTC,
		payment.ProcessedDateUTC,
		string(payment.Status),
		payment.Comment,
		payment.CustomerID,
		nullableID(payment.ApproverID),
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Get locks the row for the remainder of the transaction when one is on the
// context, so concurrent decisions against the same payment serialize.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	query := `
		SELECT id, amount, payment_date_utc, requested_date_utc, processed_date_utc,
		       status, comment, customer_id, approver_id
		FROM payments
		WHERE id = $1
	`
	if db.TxFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}
	p, err := scanPayment(r.q(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, payment *Payment) (*Payment, error) {
	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE payments
		SET status = $2, comment = $3, processed_date_utc = $4, approver_id = $5
		WHERE id = $1
	`,
		payment.ID,
		string(payment.Status),
		payment.Comment,
		payment.ProcessedDateUTC,
		nullableID(payment.ApproverID),
	)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return payment, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, take int) ([]Payment, error) {
	rows, err := r.q(ctx).Query(ctx, `
		SELECT id, amount, payment_date_utc, requested_date_utc, processed_date_utc,
		       status, comment, customer_id, approver_id
		FROM payments
		WHERE customer_id = $1
		ORDER BY payment_date_utc DESC
		OFFSET $2 LIMIT $3
	`, customerID, skip, take)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var (
		p         Payment
		amount    pgtype.Numeric
		status    string
		processed *time.Time
		approver  *uuid.UUID
	)
	err := row.Scan(
		&p.ID, &amount, &p.PaymentDateUTC, &p.RequestedDateUTC, &processed,
		&status, &p.Comment, &p.CustomerID, &approver,
	)
	if err != nil {
		return nil, err
	}
	p.Amount = db.Decimal(amount)
	p.Status = Status(status)
	p.ProcessedDateUTC = processed
	if approver != nil {
		p.ApproverID = *approver
	}
	return &p, nil
}
