package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBulletsGlyphs(t *testing.T) {
	text := strings.Join([]string{
		"• Shipped the new search backend",
		"- Cut infrastructure costs by 30 percent",
		"▪ Mentored two junior engineers",
		"•NoSpaceAfterGlyph so this is a plain line long enough to qualify",
	}, "\n")
	got := ExtractBullets(text)
	require.Len(t, got, 4)
	assert.Equal(t, "Shipped the new search backend", got[0])
	assert.Equal(t, "Cut infrastructure costs by 30 percent", got[1])
	assert.Equal(t, "Mentored two junior engineers", got[2])
	// Glyph without trailing whitespace is not a bullet marker, so the line
	// survives as a plain sentence, glyph intact.
	assert.True(t, strings.HasPrefix(got[3], "•NoSpace"))
}

func TestExtractBulletsSectionHeadersExcluded(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"Experience with distributed systems at scale", // header-prefixed, always excluded
		"Skills: Go, Postgres, Kubernetes and more",
		"education at a well regarded state university",
		"Maintained the payment reconciliation pipeline",
	}, "\n")
	got := ExtractBullets(text)
	assert.Equal(t, []string{"Maintained the payment reconciliation pipeline"}, got)
}

func TestExtractBulletsPlainLines(t *testing.T) {
	text := strings.Join([]string{
		"too short",
		"A SHORT ALL CAPS HEADING",
		"Implemented caching that reduced page load times",
		strings.Repeat("x", 501),
	}, "\n")
	got := ExtractBullets(text)
	assert.Equal(t, []string{"Implemented caching that reduced page load times"}, got)
}

func TestExtractBulletsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractBullets(""))
	assert.Empty(t, ExtractBullets("\n\n\n"))
}

func TestDetectSkills(t *testing.T) {
	got := DetectSkills("Built REST services in Python with PostgreSQL and Docker on AWS")
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "PostgreSQL")
	assert.Contains(t, got, "Docker")
	assert.Contains(t, got, "AWS")
	assert.Contains(t, got, "REST")
}

func TestDetectSkillsVocabularyOrderAndCap(t *testing.T) {
	text := "JavaScript TypeScript Python Java Ruby Rust Kotlin Swift Scala PHP React Angular"
	got := DetectSkills(text)
	assert.Len(t, got, MaxLegacyTags)
	// Matches come back in vocabulary order, not text order.
	assert.Equal(t, "JavaScript", got[0])
	assert.Equal(t, "TypeScript", got[1])
}

func TestDetectSkillsCaseInsensitive(t *testing.T) {
	got := DetectSkills("experience with KUBERNETES and postgresql")
	assert.Contains(t, got, "Kubernetes")
	assert.Contains(t, got, "PostgreSQL")
}

func TestDetectSkillsNone(t *testing.T) {
	assert.Empty(t, DetectSkills("Organized the office holiday party"))
}
