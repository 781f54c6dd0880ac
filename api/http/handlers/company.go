package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/presenter"
	"github.com/mbelov/worklog/pkg/catalog"
)

type CompanyHandler struct {
	useCase catalog.UseCase
}

func NewCompanyHandler(useCase catalog.UseCase) *CompanyHandler {
	return &CompanyHandler{useCase: useCase}
}

type companyRequest struct {
	Name string `json:"name"`
}

// Create registers a company in the caller's catalog. Creating a name that
// already exists returns the existing company.
// @Summary Create company
// @Tags    companies
// @Accept  json
// @Produce json
// @Param   input body companyRequest true "company payload"
// @Security BearerAuth
// @Success 201 {object} presenter.CompanyResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	company, err := h.useCase.CreateCompany(c.Context(), userID, req.Name)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, presenter.NewCompany(company))
}

// List returns the caller's companies.
// @Summary List companies
// @Tags    companies
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} presenter.CompanyResponse
// @Router  /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	limit, offset := parseLimitOffset(c, 50)
	companies, err := h.useCase.ListCompanies(c.Context(), userID, limit, offset)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewCompanies(companies))
}

// Get returns one company by id.
// @Summary Get company
// @Tags    companies
// @Produce json
// @Param   id path string true "company id"
// @Security BearerAuth
// @Success 200 {object} presenter.CompanyResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	company, err := h.useCase.GetCompany(c.Context(), userID, id)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewCompany(company))
}

// Rename changes a company's name.
// @Summary Rename company
// @Tags    companies
// @Accept  json
// @Produce json
// @Param   id path string true "company id"
// @Param   input body companyRequest true "company payload"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [put]
func (h *CompanyHandler) Rename(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.useCase.RenameCompany(c.Context(), userID, id, req.Name); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes a company and everything under it.
// @Summary Delete company
// @Tags    companies
// @Param   id path string true "company id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.useCase.DeleteCompany(c.Context(), userID, id); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// companyError maps domain errors onto HTTP statuses.
func companyError(c *fiber.Ctx, err error) error {
	var verr catalog.ErrValidation
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, strings.TrimSpace(verr.Error()))
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
