package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Company is an employer in a user's work history. Names are unique per user,
// case-insensitively.
type Company struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Job is a position held at a company. Remote jobs carry no city/state, and a
// current job has no end date.
type Job struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Title     string
	City      *string
	State     *string
	IsRemote  bool
	StartDate *time.Time
	EndDate   *time.Time
	IsCurrent bool
	CreatedAt time.Time
}

// BulletPoint is a single accomplishment line under a job. Position keeps the
// original resume ordering.
type BulletPoint struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	Text      string
	Position  int
	CreatedAt time.Time
}

// Skill is a named capability owned by a user, unique per user
// case-insensitively. Bullet points link to skills many-to-many.
type Skill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CompanyRepository is the storage port for companies. All reads and writes
// are owner-scoped.
type CompanyRepository interface {
	// GetOrCreate returns the owner's company with the given name, creating
	// it if absent, and reports whether a row was created. Lookup is
	// case-insensitive; concurrent creation of the same name must converge
	// on a single row.
	GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (Company, bool, error)
	GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (Company, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Company, error)
	RenameForOwner(ctx context.Context, userID, id uuid.UUID, name string) error
	// DeleteForOwner removes the company and cascades to its jobs, bullet
	// points and bullet-skill links.
	DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error
}

// JobRepository is the storage port for jobs.
type JobRepository interface {
	Create(ctx context.Context, j Job) error
	GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (Job, error)
	ListByCompanyForOwner(ctx context.Context, userID, companyID uuid.UUID, limit, offset int) ([]Job, error)
	UpdateForOwner(ctx context.Context, userID uuid.UUID, j Job) error
	DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error
}

// BulletPointRepository is the storage port for bullet points.
type BulletPointRepository interface {
	Create(ctx context.Context, b BulletPoint) error
	GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (BulletPoint, error)
	ListByJobForOwner(ctx context.Context, userID, jobID uuid.UUID) ([]BulletPoint, error)
	UpdateForOwner(ctx context.Context, userID uuid.UUID, b BulletPoint) error
	DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error
}

// SkillRepository is the storage port for skills and bullet-skill links.
type SkillRepository interface {
	// GetOrCreate returns the owner's skill with the given name, creating it
	// if absent, and reports whether a row was created. Same contract as
	// CompanyRepository.GetOrCreate.
	GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (Skill, bool, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Skill, error)
	DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error
	// Link attaches a skill to a bullet point. Linking an already linked pair
	// is a no-op, not an error.
	Link(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error
	Unlink(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error
	ListByBulletForOwner(ctx context.Context, userID, bulletPointID uuid.UUID) ([]Skill, error)
}
