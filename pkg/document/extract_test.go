package document

import (
	"archive/zip"
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Built a scheduler in Go</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Extract("resume.docx", "", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Software Engineer")
	assert.Contains(t, text, "Built a scheduler in Go")
}

func TestExtractOutputIsSanitized(t *testing.T) {
	// Callers consume Extract's result directly, without another Sanitize
	// pass, so the output must already satisfy the sanitizer's guarantees.
	data := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Name:</w:t></w:r><w:tab/><w:r><w:t>Jane   Doe</w:t></w:r></w:p>`+
		`<w:p></w:p><w:p></w:p>`+
		`<w:p><w:r><w:t>Built a scheduler in Go</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Extract("resume.docx", "", data)
	require.NoError(t, err)
	assert.Equal(t, text, Sanitize(text))
	assert.False(t, regexp.MustCompile(`\s\s`).MatchString(text))

	// A document whose body collapses to nothing is an extraction error,
	// not an empty string.
	empty := buildDocx(t, `<w:document><w:body><w:p></w:p></w:body></w:document>`)
	_, err = Extract("resume.docx", "", empty)
	require.ErrorIs(t, err, ErrExtraction)
}

func TestExtractDocxCorrupt(t *testing.T) {
	_, err := Extract("resume.docx", "", []byte("not a zip archive"))
	require.ErrorIs(t, err, ErrExtraction)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("resume.txt", "text/plain", []byte("hello"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractDocPrintableRuns(t *testing.T) {
	// Legacy .doc files carry readable text between binary sections.
	data := append([]byte{0xd0, 0xcf, 0x11, 0xe0, 0x00, 0x01}, []byte("Senior Engineer at Acme Corp")...)
	data = append(data, 0x00, 0x03, 0xff)

	text, err := Extract("resume.doc", "application/msword", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer at Acme Corp")
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("cv.pdf", ""))
	assert.True(t, Allowed("cv.docx", ""))
	assert.True(t, Allowed("cv.doc", ""))
	assert.True(t, Allowed("upload", "application/pdf"))
	assert.True(t, Allowed("upload", "application/msword; charset=utf-8"))
	assert.False(t, Allowed("cv.txt", "text/plain"))
	assert.False(t, Allowed("cv.png", "image/png"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"null bytes stripped", "a\x00b\x00c", "abc"},
		{"spaces collapsed", "a   b\t\tc", "a b c"},
		{"newline runs collapsed", "one\n\n\ntwo \n three", "one\ntwo\nthree"},
		{"nbsp treated as space", "a\u00a0\u00a0b", "a b"},
		{"trimmed", "  hello  ", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeInvariants(t *testing.T) {
	doubleWS := regexp.MustCompile(`\s\s`)
	inputs := []string{
		"plain text",
		"lots\n\n\nof\r\n\twhitespace   everywhere   here",
		strings.Repeat("word \x00", 200_000),
		strings.Repeat("я", MaxTextLen+100),
	}
	for _, in := range inputs {
		got := Sanitize(in)
		assert.LessOrEqual(t, len([]rune(got)), MaxTextLen)
		assert.NotContains(t, got, "\x00")
		assert.False(t, doubleWS.MatchString(got), "found consecutive whitespace in %q", got[:min(len(got), 80)])
	}
}
