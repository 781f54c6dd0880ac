package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/presenter"
	"github.com/mbelov/worklog/pkg/catalog"
)

type SkillHandler struct {
	useCase catalog.UseCase
}

func NewSkillHandler(useCase catalog.UseCase) *SkillHandler {
	return &SkillHandler{useCase: useCase}
}

type skillRequest struct {
	Name string `json:"name"`
}

// Create registers a skill in the caller's catalog. Creating a name that
// already exists returns the existing skill.
// @Summary Create skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body skillRequest true "skill payload"
// @Security BearerAuth
// @Success 201 {object} presenter.SkillResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /skills [post]
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	var req skillRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	skill, err := h.useCase.CreateSkill(c.Context(), userID, req.Name)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, presenter.NewSkill(skill))
}

// List returns the caller's skills.
// @Summary List skills
// @Tags    skills
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} presenter.SkillResponse
// @Router  /skills [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	limit, offset := parseLimitOffset(c, 100)
	skills, err := h.useCase.ListSkills(c.Context(), userID, limit, offset)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewSkills(skills))
}

// Delete removes a skill and its bullet links.
// @Summary Delete skill
// @Tags    skills
// @Param   id path string true "skill id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.useCase.DeleteSkill(c.Context(), userID, id); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
