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

// BulletPointRepository implements catalog.BulletPointRepository backed by
// PostgreSQL. Ownership flows through job -> company.
type BulletPointRepository struct {
	pool *pgxpool.Pool
}

func NewBulletPointRepository(pool *pgxpool.Pool) (*BulletPointRepository, error) {
	r := &BulletPointRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *BulletPointRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS bullet_points (
	id UUID PRIMARY KEY,
	job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
	text TEXT NOT NULL,
	position INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bullet_points_job ON bullet_points(job_id);
`)
	return err
}

func (r *BulletPointRepository) Create(ctx context.Context, b catalog.BulletPoint) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bullet_points (id, job_id, text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, b.ID, b.JobID, b.Text, b.Position, b.CreatedAt)
	return err
}

func (r *BulletPointRepository) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (catalog.BulletPoint, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT b.id, b.job_id, b.text, b.position, b.created_at
		FROM bullet_points b
		JOIN jobs j ON j.id = b.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE b.id = $1 AND c.user_id = $2
	`, id, userID)
	b, err := scanBullet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.BulletPoint{}, catalog.ErrNotFound
	}
	return b, err
}

func (r *BulletPointRepository) ListByJobForOwner(ctx context.Context, userID, jobID uuid.UUID) ([]catalog.BulletPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.job_id, b.text, b.position, b.created_at
		FROM bullet_points b
		JOIN jobs j ON j.id = b.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE b.job_id = $1 AND c.user_id = $2
		ORDER BY b.position, b.created_at
	`, jobID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []catalog.BulletPoint
	for rows.Next() {
		b, err := scanBullet(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *BulletPointRepository) UpdateForOwner(ctx context.Context, userID uuid.UUID, b catalog.BulletPoint) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE bullet_points SET text = $3, position = $4
		WHERE id = $1 AND job_id IN (
			SELECT j.id FROM jobs j JOIN companies c ON c.id = j.company_id WHERE c.user_id = $2
		)
	`, b.ID, userID, b.Text, b.Position)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *BulletPointRepository) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
		DELETE FROM bullet_points
		WHERE id = $1 AND job_id IN (
			SELECT j.id FROM jobs j JOIN companies c ON c.id = j.company_id WHERE c.user_id = $2
		)
	`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanBullet(row pgx.Row) (catalog.BulletPoint, error) {
	var b catalog.BulletPoint
	var created time.Time
	if err := row.Scan(&b.ID, &b.JobID, &b.Text, &b.Position, &created); err != nil {
		return catalog.BulletPoint{}, err
	}
	b.CreatedAt = created.UTC()
	return b, nil
}
