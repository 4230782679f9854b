package validator

import (
	"testing"

	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type planRequest struct {
	Subscription string `json:"subscription" validate:"required,oneof=starter pro business"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantMsg string
	}{
		{
			name:  "valid signup",
			input: &signupRequest{Email: "a@b.co", Password: "123456"},
		},
		{
			name:    "password too short",
			input:   &signupRequest{Email: "a@b.co", Password: "12345"},
			wantMsg: `"password" length must be at least 6 characters long`,
		},
		{
			name:    "missing email",
			input:   &signupRequest{Password: "123456"},
			wantMsg: `"email" is required`,
		},
		{
			name:    "malformed email",
			input:   &signupRequest{Email: "nope", Password: "123456"},
			wantMsg: `"email" must be a valid email`,
		},
		{
			name:    "unknown plan",
			input:   &planRequest{Subscription: "gold"},
			wantMsg: `"subscription" must be one of [starter, pro, business]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, appErr.Message())
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := New().Validate("plain string")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
