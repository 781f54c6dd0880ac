package presenter

import (
	"time"

	"github.com/mbelov/worklog/pkg/catalog"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCompany(c catalog.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID.String(), Name: c.Name, CreatedAt: c.CreatedAt}
}

func NewCompanies(cs []catalog.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCompany(c))
	}
	return out
}

type JobResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"companyId"`
	Title     string  `json:"title"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	IsRemote  bool    `json:"isRemote"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsCurrent bool    `json:"isCurrent"`
}

func NewJob(j catalog.Job) JobResponse {
	return JobResponse{
		ID:        j.ID.String(),
		CompanyID: j.CompanyID.String(),
		Title:     j.Title,
		City:      j.City,
		State:     j.State,
		IsRemote:  j.IsRemote,
		StartDate: formatDate(j.StartDate),
		EndDate:   formatDate(j.EndDate),
		IsCurrent: j.IsCurrent,
	}
}

func NewJobs(js []catalog.Job) []JobResponse {
	out := make([]JobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, NewJob(j))
	}
	return out
}

type BulletResponse struct {
	ID       string `json:"id"`
	JobID    string `json:"jobId"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

func NewBullet(b catalog.BulletPoint) BulletResponse {
	return BulletResponse{ID: b.ID.String(), JobID: b.JobID.String(), Text: b.Text, Position: b.Position}
}

func NewBullets(bs []catalog.BulletPoint) []BulletResponse {
	out := make([]BulletResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, NewBullet(b))
	}
	return out
}

type SkillResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewSkill(s catalog.Skill) SkillResponse {
	return SkillResponse{ID: s.ID.String(), Name: s.Name}
}

func NewSkills(ss []catalog.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewSkill(s))
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
