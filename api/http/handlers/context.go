package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mbelov/worklog/api/http/presenter"
)

// currentUserID reads the authenticated user id set by the JWT middleware.
// On failure the 401 response is already written; the caller returns nil.
func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(s)
	if err != nil {
		_ = presenter.Error(c, http.StatusUnauthorized, "not authenticated")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDParam parses a path parameter as UUID, writing a 400 on failure.
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
