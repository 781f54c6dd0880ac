package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mbelov/worklog/pkg/parsing"
)

// ImportResult counts what a resume import created. Companies and skills
// that already existed and were merely reused are not counted.
type ImportResult struct {
	Companies     int `json:"companies"`
	Jobs          int `json:"jobs"`
	BulletPoints  int `json:"bullet_points"`
	Skills        int `json:"skills"`
	Links         int `json:"links"`
	SkippedSkills int `json:"skipped_skills"`
}

// Importer persists parsed resume structures into the catalog.
type Importer struct {
	companies CompanyRepository
	jobs      JobRepository
	bullets   BulletPointRepository
	skills    SkillRepository
	log       zerolog.Logger
}

func NewImporter(companies CompanyRepository, jobs JobRepository, bullets BulletPointRepository, skills SkillRepository, log zerolog.Logger) *Importer {
	return &Importer{companies: companies, jobs: jobs, bullets: bullets, skills: skills, log: log}
}

// ImportResume writes a parsed resume into the user's catalog. Top-level
// skills are resolved first so that bullet skills can link against them;
// bullet skills naming something outside the top-level set are skipped, not
// created. Repeated imports of the same resume reuse existing companies and
// skills and add no duplicate links.
func (im *Importer) ImportResume(ctx context.Context, userID uuid.UUID, resume *parsing.Resume) (ImportResult, error) {
	var res ImportResult

	skillIDs := make(map[string]uuid.UUID, len(resume.Skills))
	for _, name := range resume.Skills {
		skill, created, err := im.skills.GetOrCreate(ctx, userID, name)
		if err != nil {
			return res, err
		}
		skillIDs[strings.ToLower(skill.Name)] = skill.ID
		if created {
			res.Skills++
		}
	}

	// Companies repeat across jobs; resolve each name once.
	companyIDs := make(map[string]uuid.UUID)
	for _, pj := range resume.Jobs {
		key := strings.ToLower(pj.Company)
		companyID, ok := companyIDs[key]
		if !ok {
			company, created, err := im.companies.GetOrCreate(ctx, userID, pj.Company)
			if err != nil {
				return res, err
			}
			companyID = company.ID
			companyIDs[key] = companyID
			if created {
				res.Companies++
			}
		}

		job := Job{
			ID:        uuid.New(),
			CompanyID: companyID,
			Title:     pj.Title,
			City:      pj.City,
			State:     pj.State,
			IsRemote:  pj.IsRemote,
			StartDate: parseDate(pj.StartDate),
			IsCurrent: pj.IsCurrent,
			CreatedAt: time.Now().UTC(),
		}
		if pj.EndDate != nil {
			job.EndDate = parseDate(*pj.EndDate)
		}
		if err := im.jobs.Create(ctx, job); err != nil {
			return res, err
		}
		res.Jobs++

		for pos, pb := range pj.BulletPoints {
			bullet := BulletPoint{
				ID:        uuid.New(),
				JobID:     job.ID,
				Text:      pb.Text,
				Position:  pos,
				CreatedAt: time.Now().UTC(),
			}
			if err := im.bullets.Create(ctx, bullet); err != nil {
				return res, err
			}
			res.BulletPoints++

			for _, name := range pb.Skills {
				skillID, ok := skillIDs[strings.ToLower(name)]
				if !ok {
					im.log.Debug().Str("skill", name).Msg("bullet skill not in resume skill set, skipping")
					res.SkippedSkills++
					continue
				}
				if err := im.skills.Link(ctx, userID, bullet.ID, skillID); err != nil {
					return res, err
				}
				res.Links++
			}
		}
	}
	return res, nil
}

// ImportBullets appends extracted bullet candidates to an existing job. Tags
// are created as skills when absent, then linked.
func (im *Importer) ImportBullets(ctx context.Context, userID, jobID uuid.UUID, candidates []parsing.BulletCandidate) (ImportResult, error) {
	var res ImportResult

	if _, err := im.jobs.GetByIDForOwner(ctx, userID, jobID); err != nil {
		return res, err
	}
	existing, err := im.bullets.ListByJobForOwner(ctx, userID, jobID)
	if err != nil {
		return res, err
	}
	position := len(existing)

	for _, c := range candidates {
		bullet := BulletPoint{
			ID:        uuid.New(),
			JobID:     jobID,
			Text:      c.Text,
			Position:  position,
			CreatedAt: time.Now().UTC(),
		}
		if err := im.bullets.Create(ctx, bullet); err != nil {
			return res, err
		}
		position++
		res.BulletPoints++

		for _, tag := range c.Tags {
			skill, created, err := im.skills.GetOrCreate(ctx, userID, tag)
			if err != nil {
				return res, err
			}
			if created {
				res.Skills++
			}
			if err := im.skills.Link(ctx, userID, bullet.ID, skill.ID); err != nil {
				return res, err
			}
			res.Links++
		}
	}
	return res, nil
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// parseDate accepts full dates plus the year-month and year shorthands models
// produce. Anything else becomes an unknown date rather than an error.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
