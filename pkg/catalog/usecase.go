package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase is the application surface for the work-history catalog. Every
// operation is scoped to the calling user.
type UseCase interface {
	CreateCompany(ctx context.Context, userID uuid.UUID, name string) (Company, error)
	GetCompany(ctx context.Context, userID, id uuid.UUID) (Company, error)
	ListCompanies(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Company, error)
	RenameCompany(ctx context.Context, userID, id uuid.UUID, name string) error
	DeleteCompany(ctx context.Context, userID, id uuid.UUID) error

	CreateJob(ctx context.Context, userID uuid.UUID, j Job) (Job, error)
	GetJob(ctx context.Context, userID, id uuid.UUID) (Job, error)
	ListJobs(ctx context.Context, userID, companyID uuid.UUID, limit, offset int) ([]Job, error)
	UpdateJob(ctx context.Context, userID uuid.UUID, j Job) error
	DeleteJob(ctx context.Context, userID, id uuid.UUID) error

	CreateBullet(ctx context.Context, userID, jobID uuid.UUID, text string) (BulletPoint, error)
	GetBullet(ctx context.Context, userID, id uuid.UUID) (BulletPoint, error)
	ListBullets(ctx context.Context, userID, jobID uuid.UUID) ([]BulletPoint, error)
	UpdateBullet(ctx context.Context, userID, id uuid.UUID, text string) error
	DeleteBullet(ctx context.Context, userID, id uuid.UUID) error

	CreateSkill(ctx context.Context, userID uuid.UUID, name string) (Skill, error)
	ListSkills(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Skill, error)
	DeleteSkill(ctx context.Context, userID, id uuid.UUID) error
	LinkSkill(ctx context.Context, userID, bulletID, skillID uuid.UUID) error
	UnlinkSkill(ctx context.Context, userID, bulletID, skillID uuid.UUID) error
	ListBulletSkills(ctx context.Context, userID, bulletID uuid.UUID) ([]Skill, error)
}

type service struct {
	companies CompanyRepository
	jobs      JobRepository
	bullets   BulletPointRepository
	skills    SkillRepository
}

// NewService returns the default UseCase implementation.
func NewService(companies CompanyRepository, jobs JobRepository, bullets BulletPointRepository, skills SkillRepository) UseCase {
	return &service{companies: companies, jobs: jobs, bullets: bullets, skills: skills}
}

func (s *service) CreateCompany(ctx context.Context, userID uuid.UUID, name string) (Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Company{}, ErrValidation("name is required")
	}
	company, _, err := s.companies.GetOrCreate(ctx, userID, name)
	return company, err
}

func (s *service) GetCompany(ctx context.Context, userID, id uuid.UUID) (Company, error) {
	return s.companies.GetByIDForOwner(ctx, userID, id)
}

func (s *service) ListCompanies(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Company, error) {
	return s.companies.ListByOwner(ctx, userID, limit, offset)
}

func (s *service) RenameCompany(ctx context.Context, userID, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrValidation("name is required")
	}
	return s.companies.RenameForOwner(ctx, userID, id, name)
}

func (s *service) DeleteCompany(ctx context.Context, userID, id uuid.UUID) error {
	return s.companies.DeleteForOwner(ctx, userID, id)
}

func (s *service) CreateJob(ctx context.Context, userID uuid.UUID, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return Job{}, ErrValidation("title is required")
	}
	// The company must exist and belong to the caller.
	if _, err := s.companies.GetByIDForOwner(ctx, userID, j.CompanyID); err != nil {
		return Job{}, err
	}
	if j.IsRemote {
		j.City, j.State = nil, nil
	}
	if j.IsCurrent {
		j.EndDate = nil
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.CreatedAt = time.Now().UTC()
	if err := s.jobs.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) GetJob(ctx context.Context, userID, id uuid.UUID) (Job, error) {
	return s.jobs.GetByIDForOwner(ctx, userID, id)
}

func (s *service) ListJobs(ctx context.Context, userID, companyID uuid.UUID, limit, offset int) ([]Job, error) {
	return s.jobs.ListByCompanyForOwner(ctx, userID, companyID, limit, offset)
}

func (s *service) UpdateJob(ctx context.Context, userID uuid.UUID, j Job) error {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return ErrValidation("title is required")
	}
	if j.IsRemote {
		j.City, j.State = nil, nil
	}
	if j.IsCurrent {
		j.EndDate = nil
	}
	return s.jobs.UpdateForOwner(ctx, userID, j)
}

func (s *service) DeleteJob(ctx context.Context, userID, id uuid.UUID) error {
	return s.jobs.DeleteForOwner(ctx, userID, id)
}

func (s *service) CreateBullet(ctx context.Context, userID, jobID uuid.UUID, text string) (BulletPoint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return BulletPoint{}, ErrValidation("text is required")
	}
	if _, err := s.jobs.GetByIDForOwner(ctx, userID, jobID); err != nil {
		return BulletPoint{}, err
	}
	existing, err := s.bullets.ListByJobForOwner(ctx, userID, jobID)
	if err != nil {
		return BulletPoint{}, err
	}
	b := BulletPoint{
		ID:        uuid.New(),
		JobID:     jobID,
		Text:      text,
		Position:  len(existing),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bullets.Create(ctx, b); err != nil {
		return BulletPoint{}, err
	}
	return b, nil
}

func (s *service) GetBullet(ctx context.Context, userID, id uuid.UUID) (BulletPoint, error) {
	return s.bullets.GetByIDForOwner(ctx, userID, id)
}

func (s *service) ListBullets(ctx context.Context, userID, jobID uuid.UUID) ([]BulletPoint, error) {
	return s.bullets.ListByJobForOwner(ctx, userID, jobID)
}

func (s *service) UpdateBullet(ctx context.Context, userID, id uuid.UUID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrValidation("text is required")
	}
	b, err := s.bullets.GetByIDForOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	b.Text = text
	return s.bullets.UpdateForOwner(ctx, userID, b)
}

func (s *service) DeleteBullet(ctx context.Context, userID, id uuid.UUID) error {
	return s.bullets.DeleteForOwner(ctx, userID, id)
}

func (s *service) CreateSkill(ctx context.Context, userID uuid.UUID, name string) (Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, ErrValidation("name is required")
	}
	skill, _, err := s.skills.GetOrCreate(ctx, userID, name)
	return skill, err
}

func (s *service) ListSkills(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Skill, error) {
	return s.skills.ListByOwner(ctx, userID, limit, offset)
}

func (s *service) DeleteSkill(ctx context.Context, userID, id uuid.UUID) error {
	return s.skills.DeleteForOwner(ctx, userID, id)
}

func (s *service) LinkSkill(ctx context.Context, userID, bulletID, skillID uuid.UUID) error {
	if _, err := s.bullets.GetByIDForOwner(ctx, userID, bulletID); err != nil {
		return err
	}
	return s.skills.Link(ctx, userID, bulletID, skillID)
}

func (s *service) UnlinkSkill(ctx context.Context, userID, bulletID, skillID uuid.UUID) error {
	return s.skills.Unlink(ctx, userID, bulletID, skillID)
}

func (s *service) ListBulletSkills(ctx context.Context, userID, bulletID uuid.UUID) ([]Skill, error) {
	return s.skills.ListByBulletForOwner(ctx, userID, bulletID)
}
