package context

import (
	"context"

	"contactbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetUser stores the authenticated user on the echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(echoUserKey, user)
}

// GetUser returns the authenticated user stored by the auth middleware, or nil.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(echoUserKey).(*entity.User)

	return user
}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext extracts the authenticated user from context.Context, or nil.
func GetUserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userKey).(*entity.User)

	return user
}
