package parsing

// Limits applied during validation.
const (
	// MinBulletLen is the minimum accepted bullet text length (exclusive).
	MinBulletLen = 10
	// MaxBulletSkills caps per-bullet skills in full-structure mode.
	MaxBulletSkills = 5
	// MaxLegacyTags caps per-bullet tags in legacy mode and heuristic fallback.
	MaxLegacyTags = 10
)

// BulletPoint is one validated accomplishment line with the skills it demonstrates.
type BulletPoint struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

// Job is one validated position. City/State/EndDate are nil when unknown —
// and always nil for remote (City, State) and current (EndDate) jobs.
type Job struct {
	Company      string        `json:"company"`
	City         *string       `json:"city"`
	State        *string       `json:"state"`
	IsRemote     bool          `json:"is_remote"`
	Title        string        `json:"title"`
	StartDate    string        `json:"start_date"` // YYYY-MM-DD
	EndDate      *string       `json:"end_date"`
	IsCurrent    bool          `json:"is_current"`
	BulletPoints []BulletPoint `json:"bullet_points"`
}

// Resume is the validated output of full-structure extraction:
// jobs ordered most recent first plus the unique resume-wide skill names.
type Resume struct {
	Jobs   []Job    `json:"jobs"`
	Skills []string `json:"skills"`
}

// Rejected describes one record dropped during validation. Dropping is
// best-effort by design, but what was dropped and why stays observable.
type Rejected struct {
	Kind   string `json:"kind"` // "job" or "bullet_point"
	Reason string `json:"reason"`
	Value  string `json:"value"`
}

// BulletCandidate is a legacy-mode extraction result: bullet text with
// free-form tags, independent of any job structure.
type BulletCandidate struct {
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}
