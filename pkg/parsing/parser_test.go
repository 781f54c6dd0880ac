package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
  "jobs": [
    {
      "company": "Acme",
      "city": null,
      "state": null,
      "is_remote": false,
      "title": "Senior Engineer",
      "start_date": "2022-03-01",
      "end_date": null,
      "is_current": true,
      "bullet_points": [
        { "text": "Led a team of five engineers", "skills": ["Leadership"] }
      ]
    },
    {
      "company": "Acme",
      "city": "Austin",
      "state": "TX",
      "is_remote": false,
      "title": "Software Engineer",
      "start_date": "2020-01-01",
      "end_date": "2022-03-01",
      "is_current": false,
      "bullet_points": [
        { "text": "Built a distributed scheduler", "skills": ["Go", "PostgreSQL"] }
      ]
    }
  ],
  "skills": ["Go", "PostgreSQL", "Leadership"]
}`

func TestParseResume(t *testing.T) {
	resume, rejected, err := ParseResume(validResponse)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, resume.Jobs, 2)

	first := resume.Jobs[0]
	assert.True(t, first.IsCurrent)
	assert.Nil(t, first.EndDate)
	assert.Equal(t, "Senior Engineer", first.Title)

	second := resume.Jobs[1]
	require.NotNil(t, second.City)
	assert.Equal(t, "Austin", *second.City)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Leadership"}, resume.Skills)
}

func TestParseResumeStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	plain, _, err := ParseResume(validResponse)
	require.NoError(t, err)
	got, _, err := ParseResume(fenced)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestParseResumeBadJSON(t *testing.T) {
	_, _, err := ParseResume("I could not find any work history, sorry!")
	require.ErrorIs(t, err, ErrBadStructure)
}

func TestParseResumeMissingJobs(t *testing.T) {
	for _, response := range []string{
		`{"skills": ["Go"]}`,
		`{"jobs": null, "skills": []}`,
		`{"jobs": "not an array"}`,
	} {
		_, _, err := ParseResume(response)
		require.ErrorIs(t, err, ErrMissingJobs, "response: %s", response)
	}
}

func TestParseResumeDropsJobsWithoutCompanyOrTitle(t *testing.T) {
	response := `{"jobs": [
		{"company": "Acme", "title": "Eng"},
		{"company": "", "title": "Mgr"},
		{"company": "NoTitle Inc", "title": "  "}
	]}`
	resume, rejected, err := ParseResume(response)
	require.NoError(t, err)
	require.Len(t, resume.Jobs, 1)
	assert.Equal(t, "Acme", resume.Jobs[0].Company)
	assert.Equal(t, "Eng", resume.Jobs[0].Title)
	require.Len(t, rejected, 2)
	for _, r := range rejected {
		assert.Equal(t, "job", r.Kind)
		assert.Equal(t, "missing company or title", r.Reason)
	}
}

func TestParseResumeAllJobsRejected(t *testing.T) {
	response := `{"jobs": [{"company": "", "title": ""}, {"company": "X", "title": ""}]}`
	_, rejected, err := ParseResume(response)
	require.ErrorIs(t, err, ErrNoJobs)
	assert.Len(t, rejected, 2)
}

func TestParseResumeRemoteNormalization(t *testing.T) {
	response := `{"jobs": [{
		"company": "Acme", "title": "Eng", "is_remote": true,
		"city": "Denver", "state": "CO"
	}]}`
	resume, _, err := ParseResume(response)
	require.NoError(t, err)
	job := resume.Jobs[0]
	assert.True(t, job.IsRemote)
	assert.Nil(t, job.City)
	assert.Nil(t, job.State)
}

func TestParseResumeCurrentJobClearsEndDate(t *testing.T) {
	response := `{"jobs": [{
		"company": "Acme", "title": "Eng", "is_current": true, "end_date": "2024-01-01"
	}]}`
	resume, _, err := ParseResume(response)
	require.NoError(t, err)
	assert.Nil(t, resume.Jobs[0].EndDate)
}

func TestParseResumeBulletValidation(t *testing.T) {
	response := `{"jobs": [{
		"company": "Acme", "title": "Eng",
		"bullet_points": [
			{"text": "short", "skills": []},
			{"text": "Shipped the billing pipeline rewrite", "skills": ["Go","SQL","Kafka","AWS","Docker","Terraform","K8s"]}
		]
	}]}`
	resume, rejected, err := ParseResume(response)
	require.NoError(t, err)
	require.Len(t, resume.Jobs[0].BulletPoints, 1)
	bp := resume.Jobs[0].BulletPoints[0]
	assert.Len(t, bp.Skills, MaxBulletSkills)
	require.Len(t, rejected, 1)
	assert.Equal(t, "bullet_point", rejected[0].Kind)
}

func TestParseResumeSkillsDefaults(t *testing.T) {
	response := `{"jobs": [{"company": "A", "title": "B"}], "skills": "oops"}`
	resume, _, err := ParseResume(response)
	require.NoError(t, err)
	assert.Empty(t, resume.Skills)

	response = `{"jobs": [{"company": "A", "title": "B"}], "skills": ["Go", "go ", "", "SQL"]}`
	resume, _, err = ParseResume(response)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills)
}

func TestParseBulletsJSON(t *testing.T) {
	response := "```json\n[{\"text\": \"Improved API latency by 40 percent\", \"tags\": [\"Go\"]}, {\"text\": \"tiny\", \"tags\": []}]\n```"
	got := ParseBullets(response)
	require.Len(t, got, 1)
	assert.Equal(t, "Improved API latency by 40 percent", got[0].Text)
	assert.Equal(t, []string{"Go"}, got[0].Tags)
}

func TestParseBulletsLineFallback(t *testing.T) {
	response := strings.Join([]string{
		"Here are the bullet points I found:",
		"{",
		`  "oops": "half json"`,
		"}",
		"Designed and launched the onboarding flow",
		"ok", // too short
		"Migrated the billing service to Postgres",
	}, "\n")
	got := ParseBullets(response)
	texts := make([]string, 0, len(got))
	for _, b := range got {
		texts = append(texts, b.Text)
	}
	assert.Contains(t, texts, "Designed and launched the onboarding flow")
	assert.Contains(t, texts, "Migrated the billing service to Postgres")
	assert.NotContains(t, texts, "{")
	assert.NotContains(t, texts, "ok")
}

func TestParseTagList(t *testing.T) {
	got := ParseTagList("Go, PostgreSQL , Kubernetes, , Docker, Terraform, Extra", 5)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes", "Docker", "Terraform"}, got)
	assert.Empty(t, ParseTagList("", 5))
}
