package parsing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// stripFences removes markdown code fences from model output, so a reply
// wrapped in ```json ... ``` parses identically to the bare object.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

type rawBullet struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

type rawJob struct {
	Company      string      `json:"company"`
	City         *string     `json:"city"`
	State        *string     `json:"state"`
	IsRemote     bool        `json:"is_remote"`
	Title        string      `json:"title"`
	StartDate    string      `json:"start_date"`
	EndDate      *string     `json:"end_date"`
	IsCurrent    bool        `json:"is_current"`
	BulletPoints []rawBullet `json:"bullet_points"`
}

// ParseResume validates a full-structure model response.
//
// The policy is lenient per field (missing optionals default) and strict on
// the structural minimum: the result must contain at least one valid job.
// Rejected jobs and bullets are dropped from the result but reported.
func ParseResume(response string) (*Resume, []Rejected, error) {
	jsonStr := stripFences(response)

	var envelope struct {
		Jobs   json.RawMessage `json:"jobs"`
		Skills json.RawMessage `json:"skills"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &envelope); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadStructure, err)
	}
	if len(envelope.Jobs) == 0 || bytes.Equal(envelope.Jobs, []byte("null")) {
		return nil, nil, ErrMissingJobs
	}
	var rawJobs []rawJob
	if err := json.Unmarshal(envelope.Jobs, &rawJobs); err != nil {
		return nil, nil, ErrMissingJobs
	}

	// Top-level skills default to empty when absent or not an array.
	var skills []string
	if len(envelope.Skills) > 0 {
		_ = json.Unmarshal(envelope.Skills, &skills)
	}

	var rejected []Rejected
	jobs := make([]Job, 0, len(rawJobs))
	for _, rj := range rawJobs {
		job, rej := validateJob(rj)
		rejected = append(rejected, rej...)
		if job != nil {
			jobs = append(jobs, *job)
		}
	}
	if len(jobs) == 0 {
		return nil, rejected, ErrNoJobs
	}

	return &Resume{Jobs: jobs, Skills: uniqueSkills(skills)}, rejected, nil
}

func validateJob(rj rawJob) (*Job, []Rejected) {
	company := strings.TrimSpace(rj.Company)
	title := strings.TrimSpace(rj.Title)
	if company == "" || title == "" {
		return nil, []Rejected{{
			Kind:   "job",
			Reason: "missing company or title",
			Value:  strings.TrimSpace(company + " / " + title),
		}}
	}

	job := Job{
		Company:   company,
		City:      trimPtr(rj.City),
		State:     trimPtr(rj.State),
		IsRemote:  rj.IsRemote,
		Title:     title,
		StartDate: strings.TrimSpace(rj.StartDate),
		EndDate:   trimPtr(rj.EndDate),
		IsCurrent: rj.IsCurrent,
	}
	// Normalization laws: remote jobs have no location, current jobs no end date.
	if job.IsRemote {
		job.City, job.State = nil, nil
	}
	if job.IsCurrent {
		job.EndDate = nil
	}

	var rejected []Rejected
	job.BulletPoints = make([]BulletPoint, 0, len(rj.BulletPoints))
	for _, rb := range rj.BulletPoints {
		text := strings.TrimSpace(rb.Text)
		if len(text) <= MinBulletLen {
			rejected = append(rejected, Rejected{
				Kind:   "bullet_point",
				Reason: "text missing or too short",
				Value:  text,
			})
			continue
		}
		job.BulletPoints = append(job.BulletPoints, BulletPoint{
			Text:   text,
			Skills: capSkills(rb.Skills, MaxBulletSkills),
		})
	}
	return &job, rejected
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func capSkills(skills []string, limit int) []string {
	out := make([]string, 0, limit)
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// uniqueSkills keeps first occurrence order, comparing case-insensitively.
func uniqueSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ParseBullets parses a legacy-mode bulk response. Bad JSON is not fatal
// here: the reply degrades to line-based splitting, where any non-trivial
// line that does not look like JSON syntax becomes a bullet candidate.
func ParseBullets(response string) []BulletCandidate {
	jsonStr := stripFences(response)

	var raw []struct {
		Text string   `json:"text"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err == nil {
		out := make([]BulletCandidate, 0, len(raw))
		for _, rb := range raw {
			text := strings.TrimSpace(rb.Text)
			if len(text) <= MinBulletLen {
				continue
			}
			out = append(out, BulletCandidate{Text: text, Tags: capSkills(rb.Tags, MaxLegacyTags)})
		}
		return out
	}

	var out []BulletCandidate
	for _, line := range strings.Split(jsonStr, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= MinBulletLen {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "}") ||
			strings.HasPrefix(line, "[") || strings.HasPrefix(line, "]") {
			continue
		}
		out = append(out, BulletCandidate{Text: line})
	}
	return out
}

// ParseTagList parses a legacy per-bullet comma-separated skill reply.
func ParseTagList(response string, limit int) []string {
	response = stripFences(response)
	parts := strings.Split(response, ",")
	return capSkills(parts, limit)
}
