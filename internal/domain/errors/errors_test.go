package errors

import (
	"net/http"
	"testing"

	"contactbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrEmailInUse.WrapMessage("register a@x.com")

	assert.True(t, errors.Is(err, ErrEmailInUse))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "Email in use", appErr.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("password too short")

	assert.Equal(t, "password too short", err.Details())
	assert.Equal(t, ErrValidationFailed.Message(), err.Message())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestCredentialFailuresShareMessage(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
	assert.Equal(t, "Email or password is wrong", ErrInvalidCredentials.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "failed to find user")

	appErr, ok := AsAppError(errors.Wrap(err, "current user"))
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAsAppError_PlainError(t *testing.T) {
	_, ok := AsAppError(errors.New("boom"))

	assert.False(t, ok)
}

func TestBaseError_WithMessageMatchesOrigin(t *testing.T) {
	err := ErrValidationFailed.WithMessage(`"password" length must be at least 6 characters long`)

	assert.True(t, errors.Is(errors.Wrap(err, "register"), ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrMissingFields))
	assert.Equal(t, `"password" length must be at least 6 characters long`, err.Message())
}
