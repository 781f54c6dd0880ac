package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Errors surfaced to the upload boundary.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, doc and docx are allowed")
	ErrExtraction        = errors.New("unable to extract text from document")
)

// MaxTextLen caps the sanitized text handed to the parsing pipeline.
const MaxTextLen = 500_000

var allowedMimeTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// Allowed reports whether the upload passes the extension/MIME allow-list.
// Checked at the HTTP boundary before any extraction work starts.
func Allowed(filename, mimeType string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	_, ok := allowedMimeTypes[normalizeMime(mimeType)]
	return ok
}

func normalizeMime(mimeType string) string {
	// strip parameters like "; charset=utf-8"
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// Extract converts an uploaded resume into sanitized plain text.
// The format is chosen by extension, falling back to the declared MIME type.
func Extract(filename, mimeType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = allowedMimeTypes[normalizeMime(mimeType)]
	}
	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractTextFromPDF(data)
	case ".docx":
		text, err = extractTextFromDocx(data)
	case ".doc":
		text, err = extractTextFromDoc(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	text = Sanitize(text)
	if text == "" {
		return "", fmt.Errorf("%w: document contains no text", ErrExtraction)
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	return reTags.ReplaceAllString(xml, " "), nil
}

// extractTextFromDoc is a best-effort scan for legacy binary Word files:
// printable runs of the OLE stream are kept, everything else is dropped.
func extractTextFromDoc(data []byte) (string, error) {
	const minRun = 8
	var out strings.Builder
	var run []byte
	flush := func() {
		if len(run) >= minRun {
			out.Write(run)
			out.WriteByte('\n')
		}
		run = run[:0]
	}
	for _, b := range data {
		if b == '\r' {
			b = '\n'
		}
		if b >= 0x20 && b < 0x7f || b == '\t' {
			run = append(run, b)
			continue
		}
		flush()
	}
	flush()
	if out.Len() == 0 {
		return "", errors.New("no readable text in doc file")
	}
	return out.String(), nil
}
