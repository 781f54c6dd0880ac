package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mbelov/worklog/api/http/presenter"
	"github.com/mbelov/worklog/pkg/catalog"
)

type JobHandler struct {
	useCase catalog.UseCase
}

func NewJobHandler(useCase catalog.UseCase) *JobHandler {
	return &JobHandler{useCase: useCase}
}

type jobRequest struct {
	Title     string  `json:"title"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	IsRemote  bool    `json:"isRemote"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	IsCurrent bool    `json:"isCurrent"`
}

func (r jobRequest) dates(c *fiber.Ctx) (start, end *time.Time, ok bool) {
	start, ok = parseDateField(c, "startDate", r.StartDate)
	if !ok {
		return nil, nil, false
	}
	end, ok = parseDateField(c, "endDate", r.EndDate)
	if !ok {
		return nil, nil, false
	}
	return start, end, true
}

func parseDateField(c *fiber.Ctx, name string, v *string) (*time.Time, bool) {
	if v == nil || *v == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *v)
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, name+" must be formatted YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

// Create adds a job under a company.
// @Summary Create job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "company id"
// @Param   input body jobRequest true "job payload"
// @Security BearerAuth
// @Success 201 {object} presenter.JobResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	companyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	start, end, ok := req.dates(c)
	if !ok {
		return nil
	}
	job, err := h.useCase.CreateJob(c.Context(), userID, catalog.Job{
		CompanyID: companyID,
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		IsRemote:  req.IsRemote,
		StartDate: start,
		EndDate:   end,
		IsCurrent: req.IsCurrent,
	})
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, presenter.NewJob(job))
}

// List returns the jobs under a company.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Param   id path string true "company id"
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} presenter.JobResponse
// @Router  /companies/{id}/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	companyID, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.useCase.ListJobs(c.Context(), userID, companyID, limit, offset)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewJobs(jobs))
}

// Get returns one job by id.
// @Summary Get job
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 200 {object} presenter.JobResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	job, err := h.useCase.GetJob(c.Context(), userID, id)
	if err != nil {
		return companyError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.NewJob(job))
}

// Update replaces a job's editable fields.
// @Summary Update job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job id"
// @Param   input body jobRequest true "job payload"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	start, end, ok := req.dates(c)
	if !ok {
		return nil
	}
	current, err := h.useCase.GetJob(c.Context(), userID, id)
	if err != nil {
		return companyError(c, err)
	}
	err = h.useCase.UpdateJob(c.Context(), userID, catalog.Job{
		ID:        id,
		CompanyID: current.CompanyID,
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		IsRemote:  req.IsRemote,
		StartDate: start,
		EndDate:   end,
		IsCurrent: req.IsCurrent,
	})
	if err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes a job and its bullet points.
// @Summary Delete job
// @Tags    jobs
// @Param   id path string true "job id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return nil
	}
	if err := h.useCase.DeleteJob(c.Context(), userID, id); err != nil {
		return companyError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
