package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/http/response"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Every reply has the shape {"message": "..."}.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := domainerrors.AsAppError(err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("error", fmt.Sprintf("%+v", err)),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		m.write(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors: unmatched routes, wrong methods, oversized bodies.
	// A known path with an unsupported method is reported like an unknown path.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			m.write(c, http.StatusNotFound, response.MsgRouteNotFound)
		default:
			message := http.StatusText(httpErr.Code)
			if text, ok := httpErr.Message.(string); ok && text != "" {
				message = text
			}
			m.write(c, httpErr.Code, message)
		}

		return
	}

	logger.Error("Unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, err.Error())
}

func (m *ErrorMiddleware) write(c echo.Context, code int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = response.Message(c, code, message)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
