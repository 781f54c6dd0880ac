package parsing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mbelov/worklog/pkg/llm"
)

// Service runs the extraction pipeline against a chat model. A nil model is a
// supported runtime mode: legacy flows degrade to heuristics, full-structure
// extraction refuses with ErrModelNotConfigured.
type Service struct {
	model llm.ChatModel
	log   zerolog.Logger
}

func NewService(model llm.ChatModel, log zerolog.Logger) *Service {
	return &Service{model: model, log: log}
}

// ParseResume extracts the full company/job/bullet/skill graph from sanitized
// resume text. No heuristic fallback exists for this mode: without a model the
// request fails, and model failures are surfaced rather than recovered.
func (s *Service) ParseResume(ctx context.Context, sanitizedText string) (*Resume, []Rejected, error) {
	if s.model == nil {
		return nil, nil, ErrModelNotConfigured
	}
	system, user := BuildResumePrompt(sanitizedText)
	raw, err := s.model.Ask(ctx, system, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrModelCall, err)
	}
	resume, rejected, err := ParseResume(raw)
	if err != nil {
		return nil, rejected, err
	}
	if len(rejected) > 0 {
		s.log.Warn().
			Int("rejected", len(rejected)).
			Int("jobs", len(resume.Jobs)).
			Msg("resume validation dropped records")
	}
	return resume, rejected, nil
}

// ExtractBullets runs legacy bulk extraction: a flat list of bullet
// candidates with tags, independent of job structure. Any model failure is
// recovered locally through the deterministic heuristics.
func (s *Service) ExtractBullets(ctx context.Context, sanitizedText string) []BulletCandidate {
	if s.model == nil {
		return s.heuristicBullets(sanitizedText)
	}
	system, user := BuildBulletsPrompt(sanitizedText)
	raw, err := s.model.Ask(ctx, system, user)
	if err != nil {
		s.log.Warn().Err(err).Msg("bullet extraction model call failed, using heuristics")
		return s.heuristicBullets(sanitizedText)
	}
	return ParseBullets(raw)
}

// SuggestSkills names up to 5 skills for a single bullet text, falling back
// to vocabulary matching when the model is unavailable.
func (s *Service) SuggestSkills(ctx context.Context, bulletText string) []string {
	if s.model == nil {
		return capSkills(DetectSkills(bulletText), MaxBulletSkills)
	}
	system, user := BuildTagsPrompt(bulletText)
	raw, err := s.model.Ask(ctx, system, user)
	if err != nil {
		s.log.Warn().Err(err).Msg("skill suggestion model call failed, using heuristics")
		return capSkills(DetectSkills(bulletText), MaxBulletSkills)
	}
	return ParseTagList(raw, MaxBulletSkills)
}

func (s *Service) heuristicBullets(text string) []BulletCandidate {
	lines := ExtractBullets(text)
	out := make([]BulletCandidate, 0, len(lines))
	for _, line := range lines {
		out = append(out, BulletCandidate{Text: line, Tags: DetectSkills(line)})
	}
	return out
}
