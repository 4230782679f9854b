package postgres

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: true},
		{name: "postgres message", err: fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), want: true},
		{name: "sqlite message", err: fmt.Errorf("UNIQUE constraint failed: users.email"), want: true},
		{name: "other", err: fmt.Errorf("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf("NOT NULL constraint failed: contacts.name")))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("timeout")))
}
