package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/http/middleware"
	"contactbook/internal/delivery/http/validator"
	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the production error handler and validator without the network stack.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// asUser stands in for the auth middleware.
func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, user)

			return next(c)
		}
	}
}

func newTestUser() *entity.User {
	user := entity.NewUser("ann@example.com", "hash", "verify-token")
	user.ID = uuid.New()

	return user
}

func performJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
