// Package response writes the JSON bodies shared by all handlers.
package response

import (
	"fmt"
	"net/http"

	domainerrors "contactbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Messages returned as {"message": ...} bodies.
const (
	MsgProtectedRoute      = "protected route"
	MsgVerificationSuccess = "Verification successful"
	MsgVerificationSent    = "Verification email sent"
	MsgContactDeleted      = "contact deleted"
	MsgRouteNotFound       = "Not found"
	MsgHomepage            = "Hello from Homepage."
)

// ContactCreated is the plain JSON string returned after a contact is added.
func ContactCreated(name string) string {
	return fmt.Sprintf("contact with name:%s add to data base!", name)
}

// Message writes {"message": message} with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{Message: message})
}

// OK writes data as a 200 JSON body.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes data as a 201 JSON body.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Unauthorized writes the 401 body used for every authentication failure.
func Unauthorized(c echo.Context) error {
	return Message(c, http.StatusUnauthorized, domainerrors.ErrNotAuthorized.Message())
}
