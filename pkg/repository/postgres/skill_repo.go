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

// SkillRepository implements catalog.SkillRepository backed by PostgreSQL,
// including the bullet-skill link table.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) (*SkillRepository, error) {
	r := &SkillRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_skills_user_lower_name ON skills(user_id, lower(name));
CREATE TABLE IF NOT EXISTS bullet_point_skills (
	bullet_point_id UUID NOT NULL REFERENCES bullet_points(id) ON DELETE CASCADE,
	skill_id UUID NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
	PRIMARY KEY (bullet_point_id, skill_id)
);
`)
	return err
}

// GetOrCreate mirrors CompanyRepository.GetOrCreate: case-insensitive lookup,
// insert on miss reporting creation, re-fetch on a concurrent
// unique_violation.
func (r *SkillRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (catalog.Skill, bool, error) {
	name = strings.TrimSpace(name)
	if s, err := r.getByName(ctx, userID, name); err == nil {
		return s, false, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return catalog.Skill{}, false, err
	}

	s := catalog.Skill{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: time.Now().UTC()}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO skills (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, s.ID, s.UserID, s.Name, s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation: lost the race
			existing, err := r.getByName(ctx, userID, name)
			return existing, false, err
		}
		return catalog.Skill{}, false, err
	}
	return s, true, nil
}

func (r *SkillRepository) getByName(ctx context.Context, userID uuid.UUID, name string) (catalog.Skill, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM skills WHERE user_id = $1 AND lower(name) = lower($2)
	`, userID, name)
	return scanSkill(row)
}

func (r *SkillRepository) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]catalog.Skill, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at
		FROM skills WHERE user_id = $1
		ORDER BY lower(name)
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []catalog.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *SkillRepository) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Link inserts the pair, ignoring duplicates. The skill must belong to the
// caller; bullet ownership is the use case's concern.
func (r *SkillRepository) Link(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
		INSERT INTO bullet_point_skills (bullet_point_id, skill_id)
		SELECT $1, id FROM skills WHERE id = $2 AND user_id = $3
		ON CONFLICT (bullet_point_id, skill_id) DO NOTHING
	`, bulletPointID, skillID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		// Either the skill is not the caller's, or the link already exists.
		// Distinguish the two: a missing skill is an error, a duplicate is not.
		if _, err := r.getByID(ctx, userID, skillID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SkillRepository) Unlink(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM bullet_point_skills
		WHERE bullet_point_id = $1 AND skill_id IN (
			SELECT id FROM skills WHERE id = $2 AND user_id = $3
		)
	`, bulletPointID, skillID, userID)
	return err
}

func (r *SkillRepository) ListByBulletForOwner(ctx context.Context, userID, bulletPointID uuid.UUID) ([]catalog.Skill, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.user_id, s.name, s.created_at
		FROM bullet_point_skills bps
		JOIN skills s ON s.id = bps.skill_id
		WHERE bps.bullet_point_id = $1 AND s.user_id = $2
		ORDER BY lower(s.name)
	`, bulletPointID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []catalog.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *SkillRepository) getByID(ctx context.Context, userID, id uuid.UUID) (catalog.Skill, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at
		FROM skills WHERE id = $1 AND user_id = $2
	`, id, userID)
	s, err := scanSkill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Skill{}, catalog.ErrNotFound
	}
	return s, err
}

func scanSkill(row pgx.Row) (catalog.Skill, error) {
	var s catalog.Skill
	var created time.Time
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &created); err != nil {
		return catalog.Skill{}, err
	}
	s.CreatedAt = created.UTC()
	return s, nil
}
