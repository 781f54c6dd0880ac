package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbelov/worklog/pkg/catalog"
)

// JobRepository implements catalog.JobRepository backed by PostgreSQL. Jobs
// carry no user_id of their own; ownership flows through the company.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	city TEXT,
	state TEXT,
	is_remote BOOLEAN NOT NULL DEFAULT FALSE,
	start_date DATE,
	end_date DATE,
	is_current BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id);
`)
	return err
}

func (r *JobRepository) Create(ctx context.Context, j catalog.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, company_id, title, city, state, is_remote, start_date, end_date, is_current, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, j.ID, j.CompanyID, j.Title, j.City, j.State, j.IsRemote, j.StartDate, j.EndDate, j.IsCurrent, j.CreatedAt)
	return err
}

func (r *JobRepository) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (catalog.Job, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT j.id, j.company_id, j.title, j.city, j.state, j.is_remote, j.start_date, j.end_date, j.is_current, j.created_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1 AND c.user_id = $2
	`, id, userID)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Job{}, catalog.ErrNotFound
	}
	return j, err
}

func (r *JobRepository) ListByCompanyForOwner(ctx context.Context, userID, companyID uuid.UUID, limit, offset int) ([]catalog.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT j.id, j.company_id, j.title, j.city, j.state, j.is_remote, j.start_date, j.end_date, j.is_current, j.created_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = $1 AND c.user_id = $2
		ORDER BY j.is_current DESC, j.start_date DESC NULLS LAST
		LIMIT $3 OFFSET $4
	`, companyID, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []catalog.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) UpdateForOwner(ctx context.Context, userID uuid.UUID, j catalog.Job) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE jobs SET title = $3, city = $4, state = $5, is_remote = $6,
			start_date = $7, end_date = $8, is_current = $9
		WHERE id = $1 AND company_id IN (SELECT id FROM companies WHERE user_id = $2)
	`, j.ID, userID, j.Title, j.City, j.State, j.IsRemote, j.StartDate, j.EndDate, j.IsCurrent)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *JobRepository) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
		DELETE FROM jobs
		WHERE id = $1 AND company_id IN (SELECT id FROM companies WHERE user_id = $2)
	`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (catalog.Job, error) {
	var j catalog.Job
	var created time.Time
	if err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.City, &j.State, &j.IsRemote,
		&j.StartDate, &j.EndDate, &j.IsCurrent, &created); err != nil {
		return catalog.Job{}, err
	}
	j.CreatedAt = created.UTC()
	return j, nil
}
