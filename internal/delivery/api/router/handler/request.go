package handler

import (
	"strconv"

	"commerce/internal/delivery/api/response"
	"commerce/internal/delivery/api/validator"
	"commerce/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// validationFailed renders a validator error with its per-field details.
func validationFailed(c echo.Context, err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", verr.Fields)
	}

	return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
}

// optionalUUIDQuery parses an optional UUID query parameter.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	return &id, nil
}

// intQuery parses an optional integer query parameter.
func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}

	return n, nil
}
