package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	response string
	err      error
	calls    int
	lastUser string
}

func (f *fakeModel) Ask(_ context.Context, _ string, userPrompt string) (string, error) {
	f.calls++
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestServiceParseResume(t *testing.T) {
	model := &fakeModel{response: validResponse}
	svc := NewService(model, zerolog.Nop())

	resume, rejected, err := svc.ParseResume(context.Background(), "Jane Doe resume text")
	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.Len(t, resume.Jobs, 2)
	assert.Equal(t, 1, model.calls)
	assert.Contains(t, model.lastUser, "Jane Doe resume text")
	assert.Contains(t, model.lastUser, resumeTextStart)
}

func TestServiceParseResumeNoModel(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())
	_, _, err := svc.ParseResume(context.Background(), "text")
	require.ErrorIs(t, err, ErrModelNotConfigured)
}

func TestServiceParseResumeModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}
	svc := NewService(model, zerolog.Nop())
	_, _, err := svc.ParseResume(context.Background(), "text")
	require.ErrorIs(t, err, ErrModelCall)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestServiceParseResumeGarbageResponse(t *testing.T) {
	model := &fakeModel{response: "I am sorry, I cannot help with that."}
	svc := NewService(model, zerolog.Nop())
	_, _, err := svc.ParseResume(context.Background(), "text")
	require.ErrorIs(t, err, ErrBadStructure)
}

func TestServiceExtractBullets(t *testing.T) {
	model := &fakeModel{response: `[{"text": "Shipped the new search backend", "tags": ["Elasticsearch"]}]`}
	svc := NewService(model, zerolog.Nop())
	got := svc.ExtractBullets(context.Background(), "whatever")
	require.Len(t, got, 1)
	assert.Equal(t, "Shipped the new search backend", got[0].Text)
	assert.Equal(t, []string{"Elasticsearch"}, got[0].Tags)
}

func TestServiceExtractBulletsFallsBackOnModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("timeout")}
	svc := NewService(model, zerolog.Nop())
	got := svc.ExtractBullets(context.Background(), "• Built dashboards in React for the sales team")
	require.Len(t, got, 1)
	assert.Equal(t, "Built dashboards in React for the sales team", got[0].Text)
	assert.Contains(t, got[0].Tags, "React")
}

func TestServiceExtractBulletsNoModel(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())
	got := svc.ExtractBullets(context.Background(), "• Automated deployments with Terraform and Jenkins")
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Tags, "Terraform")
	assert.Contains(t, got[0].Tags, "Jenkins")
}

func TestServiceSuggestSkills(t *testing.T) {
	model := &fakeModel{response: "Go, PostgreSQL, Kubernetes"}
	svc := NewService(model, zerolog.Nop())
	got := svc.SuggestSkills(context.Background(), "Migrated services to Kubernetes")
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, got)
}

func TestServiceSuggestSkillsFallback(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())
	got := svc.SuggestSkills(context.Background(), "Optimized PostgreSQL queries and Redis caching")
	assert.Contains(t, got, "PostgreSQL")
	assert.Contains(t, got, "Redis")
	assert.LessOrEqual(t, len(got), MaxBulletSkills)
}
