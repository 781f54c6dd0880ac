package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// Deterministic, model-free extraction for legacy flows. Used when no model
// credential is configured or the model call fails.

var bulletGlyphs = map[rune]struct{}{
	'•': {}, '-': {}, '*': {}, '○': {}, '●': {},
	'▪': {}, '▫': {}, '►': {}, '‣': {}, '⁃': {},
}

// Section headers never qualify as bullets, whatever their shape.
var sectionHeaderRe = regexp.MustCompile(`(?i)^(education|experience|skills|contact|summary|objective)\b`)

const (
	minHeuristicBulletLen = 20
	maxHeuristicBulletLen = 500
)

// ExtractBullets scans lines of sanitized resume text for accomplishment
// bullets: either an explicit bullet glyph, or a sentence-sized line that is
// not an all-caps heading. Leading glyphs are stripped from the result.
func ExtractBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || sectionHeaderRe.MatchString(line) {
			continue
		}
		if stripped, ok := stripBulletGlyph(line); ok {
			if len(stripped) > MinBulletLen {
				out = append(out, stripped)
			}
			continue
		}
		if len(line) >= minHeuristicBulletLen && len(line) <= maxHeuristicBulletLen && !isAllCapsHeading(line) {
			out = append(out, line)
		}
	}
	return out
}

// stripBulletGlyph reports whether the line starts with a bullet glyph
// followed by whitespace, and returns the line without the glyph prefix.
func stripBulletGlyph(line string) (string, bool) {
	runes := []rune(line)
	if len(runes) < 2 {
		return line, false
	}
	if _, ok := bulletGlyphs[runes[0]]; !ok {
		return line, false
	}
	if !unicode.IsSpace(runes[1]) {
		return line, false
	}
	return strings.TrimSpace(string(runes[1:])), true
}

func isAllCapsHeading(line string) bool {
	if len(line) > 60 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// DetectSkills matches text against the reference vocabulary,
// case-insensitively. Matches come back in vocabulary order, capped at
// MaxLegacyTags.
func DetectSkills(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			out = append(out, skill)
			if len(out) == MaxLegacyTags {
				break
			}
		}
	}
	return out
}
