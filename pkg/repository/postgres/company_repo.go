package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbelov/worklog/pkg/catalog"
)

// CompanyRepository implements catalog.CompanyRepository backed by PostgreSQL.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) (*CompanyRepository, error) {
	r := &CompanyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CompanyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_user_lower_name ON companies(user_id, lower(name));
`)
	return err
}

// GetOrCreate looks the name up case-insensitively and inserts on miss,
// reporting whether a row was created. A concurrent insert of the same name
// trips the unique index; on that unique_violation the row is re-fetched
// instead of failing the caller.
func (r *CompanyRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (catalog.Company, bool, error) {
	name = strings.TrimSpace(name)
	if c, err := r.getByName(ctx, userID, name); err == nil {
		return c, false, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return catalog.Company{}, false, err
	}

	c := catalog.Company{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: time.Now().UTC()}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO companies (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.UserID, c.Name, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation: lost the race
			existing, err := r.getByName(ctx, userID, name)
			return existing, false, err
		}
		return catalog.Company{}, false, err
	}
	return c, true, nil
}

func (r *CompanyRepository) getByName(ctx context.Context, userID uuid.UUID, name string) (catalog.Company, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM companies WHERE user_id = $1 AND lower(name) = lower($2)
	`, userID, name)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (catalog.Company, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM companies WHERE id = $1 AND user_id = $2
	`, id, userID)
	c, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Company{}, catalog.ErrNotFound
	}
	return c, err
}

func (r *CompanyRepository) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]catalog.Company, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at
		FROM companies WHERE user_id = $1
		ORDER BY lower(name)
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []catalog.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *CompanyRepository) RenameForOwner(ctx context.Context, userID, id uuid.UUID, name string) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE companies SET name = $3 WHERE id = $1 AND user_id = $2
	`, id, userID, strings.TrimSpace(name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.ErrValidation("a company with that name already exists")
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (catalog.Company, error) {
	var c catalog.Company
	var created time.Time
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &created); err != nil {
		return catalog.Company{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}
