package handler

import (
	"net/http"
	"time"

	"market/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dayLayout = time.DateOnly

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// uuidParam parses a path parameter; on failure the 400 response is already written
// and the returned error is what the handler should return.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate binds the body and runs its validate tags.
// Validation failures are rendered by the central error handler with field details.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, err
	}

	return true, nil
}
