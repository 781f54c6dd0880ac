package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/presenter"
	"github.com/mbelov/worklog/pkg/catalog"
	"github.com/mbelov/worklog/pkg/document"
	"github.com/mbelov/worklog/pkg/parsing"
)

// ImportHandler accepts resume uploads and turns them into catalog records.
type ImportHandler struct {
	parser   *parsing.Service
	importer *catalog.Importer
	useCase  catalog.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewImportHandler(parser *parsing.Service, importer *catalog.Importer, useCase catalog.UseCase, maxBytes int64) *ImportHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20 // 10MB
	}
	return &ImportHandler{parser: parser, importer: importer, useCase: useCase, maxBytes: maxBytes}
}

// Resume imports a full resume: companies, jobs, bullet points and skills.
// @Summary Import resume
// @Description Accepts a PDF or Word resume, extracts the work history with the model and writes it into the caller's catalog.
// @Tags    import
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (pdf, doc or docx)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /import/resume [post]
func (h *ImportHandler) Resume(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	text, ok := h.extractUpload(c)
	if !ok {
		return nil
	}

	resume, rejected, err := h.parser.ParseResume(c.Context(), text)
	if err != nil {
		return parseError(c, err)
	}
	result, err := h.importer.ImportResume(c.Context(), userID, resume)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store parsed resume")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"imported": result,
		"rejected": rejected,
	})
}

// Bullets imports bullet candidates into an existing job without touching the
// company/job structure. Works without a configured model via heuristics.
// @Summary Import bullets into a job
// @Tags    import
// @Accept  multipart/form-data
// @Produce json
// @Param   id path string true "job id"
// @Param   file formData file true "resume file (pdf, doc or docx)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/bullets/import [post]
func (h *ImportHandler) Bullets(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	text, ok := h.extractUpload(c)
	if !ok {
		return nil
	}

	candidates := h.parser.ExtractBullets(c.Context(), text)
	result, err := h.importer.ImportBullets(c.Context(), userID, jobID, candidates)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"imported":   result,
		"candidates": len(candidates),
	})
}

// SuggestSkills proposes up to 5 skill names for one bullet point.
// @Summary Suggest skills for a bullet
// @Tags    import
// @Produce json
// @Param   id path string true "bullet id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bullets/{id}/skills/suggest [post]
func (h *ImportHandler) SuggestSkills(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	bullet, err := h.useCase.GetBullet(c.Context(), userID, id)
	if err != nil {
		return companyError(c, err)
	}
	skills := h.parser.SuggestSkills(c.Context(), bullet.Text)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"skills": skills})
}

// extractUpload reads the multipart file, rejects unsupported formats, and
// returns sanitized text. On failure the response is already written.
func (h *ImportHandler) extractUpload(c *fiber.Ctx) (string, bool) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		_ = presenter.Error(c, http.StatusBadRequest, "file is required (pdf, doc or docx)")
		return "", false
	}
	if !document.Allowed(fh.Filename, fh.Header.Get("Content-Type")) {
		_ = presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, doc and docx are allowed")
		return "", false
	}
	file, err := fh.Open()
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
		return "", false
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	// Extract sanitizes its output and fails on documents with no text.
	text, err := document.Extract(fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read document: %v", err))
		return "", false
	}
	return text, true
}

// parseError maps extraction pipeline failures onto HTTP statuses.
func parseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, parsing.ErrModelNotConfigured):
		return presenter.Error(c, http.StatusServiceUnavailable, "resume import requires a configured model")
	case errors.Is(err, parsing.ErrModelCall):
		return presenter.Error(c, http.StatusBadGateway, "model call failed")
	case errors.Is(err, parsing.ErrBadStructure),
		errors.Is(err, parsing.ErrMissingJobs),
		errors.Is(err, parsing.ErrNoJobs):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "resume import failed")
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
