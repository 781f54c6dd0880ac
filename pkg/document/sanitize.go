package document

import (
	"regexp"
	"strings"
)

var (
	reLineSpace = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	reNewlines  = regexp.MustCompile(` ?\n[\n ]*`)
)

// Sanitize normalizes extracted document text:
//   - null bytes stripped
//   - runs of whitespace collapsed (line structure survives as single \n,
//     everything else becomes a single space — the bullet heuristics need lines)
//   - trimmed, capped at MaxTextLen characters
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = reLineSpace.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	s = strings.TrimSpace(s)
	if len(s) > MaxTextLen {
		runes := []rune(s)
		if len(runes) > MaxTextLen {
			s = strings.TrimSpace(string(runes[:MaxTextLen]))
		}
	}
	return s
}
