package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payd-hq/payd/internal/platform/db"
	"github.com/payd-hq/payd/internal/shared"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed staff repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) q(ctx context.Context) db.Querier {
	return db.From(ctx, r.pool)
}

func (r *repository) Create(ctx context.Context, member *Staff) (*Staff, error) {
	_, err := r.q(ctx).Exec(ctx, `
		INSERT INTO staff (id, surname, given_names, email, is_deleted)
		VALUES ($1, $2, $3, $4, $5)
	`, member.ID, member.Surname, member.GivenNames, member.Email, member.IsDeleted)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Get excludes soft-deleted rows. Approver lookups go through here, so a
// deactivated member reads as absent everywhere.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	row := r.q(ctx).QueryRow(ctx, `
		SELECT id, surname, given_names, email, is_deleted
		FROM staff
		WHERE id = $1 AND NOT is_deleted
	`, id)
	m, err := scanStaff(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *repository) List(ctx context.Context) ([]Staff, error) {
	rows, err := r.q(ctx).Query(ctx, `
		SELECT id, surname, given_names, email, is_deleted
		FROM staff
		WHERE NOT is_deleted
		ORDER BY surname, given_names
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Staff
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *repository) Update(ctx context.Context, member *Staff) (*Staff, error) {
	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE staff
		SET surname = $2, given_names = $3, email = $4
		WHERE id = $1 AND NOT is_deleted
	`, member.ID, member.Surname, member.GivenNames, member.Email)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, r.missingOrDeleted(ctx, member.ID)
	}
	return member, nil
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, `UPDATE staff SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) missingOrDeleted(ctx context.Context, id uuid.UUID) error {
	var isDeleted bool
	err := r.q(ctx).QueryRow(ctx, `SELECT is_deleted FROM staff WHERE id = $1`, id).Scan(&isDeleted)
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

func scanStaff(row pgx.Row) (*Staff, error) {
	var m Staff
	if err := row.Scan(&m.ID, &m.Surname, &m.GivenNames, &m.Email, &m.IsDeleted); err != nil {
		return nil, err
	}
	return &m, nil
}
