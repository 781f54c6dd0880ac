package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/presenter"
	"github.com/mbelov/worklog/pkg/catalog"
)

type BulletHandler struct {
	useCase catalog.UseCase
}

func NewBulletHandler(useCase catalog.UseCase) *BulletHandler {
	return &BulletHandler{useCase: useCase}
}

type bulletRequest struct {
	Text string `json:"text"`
}

// Create adds a bullet point to a job.
// @Summary Create bullet point
// @Tags    bullets
// @Accept  json
// @Produce json
// @Param   id path string true "job id"
// @Param   input body bulletRequest true "bullet payload"
// @Security BearerAuth
// @Success 201 {object} presenter.BulletResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/bullets [post]
func (h *BulletHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	var req bulletRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	bullet, err := h.useCase.CreateBullet(c.Context(), userID, jobID, req.Text)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, presenter.NewBullet(bullet))
}

// List returns a job's bullet points in resume order.
// @Summary List bullet points
// @Tags    bullets
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 200 {array} presenter.BulletResponse
// @Router  /jobs/{id}/bullets [get]
func (h *BulletHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	bullets, err := h.useCase.ListBullets(c.Context(), userID, jobID)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewBullets(bullets))
}

// Update replaces a bullet point's text.
// @Summary Update bullet point
// @Tags    bullets
// @Accept  json
// @Param   id path string true "bullet id"
// @Param   input body bulletRequest true "bullet payload"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bullets/{id} [put]
func (h *BulletHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	var req bulletRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.useCase.UpdateBullet(c.Context(), userID, id, req.Text); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes a bullet point.
// @Summary Delete bullet point
// @Tags    bullets
// @Param   id path string true "bullet id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bullets/{id} [delete]
func (h *BulletHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.useCase.DeleteBullet(c.Context(), userID, id); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Skills returns the skills linked to a bullet point.
// @Summary List bullet skills
// @Tags    bullets
// @Produce json
// @Param   id path string true "bullet id"
// @Security BearerAuth
// @Success 200 {array} presenter.SkillResponse
// @Router  /bullets/{id}/skills [get]
func (h *BulletHandler) Skills(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	skills, err := h.useCase.ListBulletSkills(c.Context(), userID, id)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewSkills(skills))
}

// LinkSkill attaches a skill to a bullet point; linking twice is a no-op.
// @Summary Link skill to bullet
// @Tags    bullets
// @Param   id path string true "bullet id"
// @Param   skillId path string true "skill id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /bullets/{id}/skills/{skillId} [put]
func (h *BulletHandler) LinkSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	bulletID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	skillID, ok := parseUUIDParam(c, "skillId")
	if !ok {
		return nil
	}
	if err := h.useCase.LinkSkill(c.Context(), userID, bulletID, skillID); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// UnlinkSkill detaches a skill from a bullet point.
// @Summary Unlink skill from bullet
// @Tags    bullets
// @Param   id path string true "bullet id"
// @Param   skillId path string true "skill id"
// @Security BearerAuth
// @Success 204
// @Router  /bullets/{id}/skills/{skillId} [delete]
func (h *BulletHandler) UnlinkSkill(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	bulletID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	skillID, ok := parseUUIDParam(c, "skillId")
	if !ok {
		return nil
	}
	if err := h.useCase.UnlinkSkill(c.Context(), userID, bulletID, skillID); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
