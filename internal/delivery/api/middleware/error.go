package middleware

import (
	"log/slog"
	"net/http"

	"commerce/internal/delivery/api/response"
	deliverycontext "commerce/internal/delivery/context"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/errors"

	"github.com/labstack/echo/v4"
)

// httpErrorCodes names the router and middleware failures echo reports as
// *echo.HTTPError.
var httpErrorCodes = map[int]string{ //nolint:gochecknoglobals
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware is the echo HTTPErrorHandler. Domain errors keep their
// code; anything unrecognized is logged and answered with a bare 500.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.HandleAppError(c, err)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		code, known := httpErrorCodes[httpErr.Code]
		if !known {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
