// Package repository declares the stores the usecases read and write.
package repository

import (
	"context"

	"contactbook/internal/domain/entity"
	"contactbook/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by every UserRepository lookup that matches no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Accounts are never deleted.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an address already passed through entity.NormalizeEmail.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByVerificationToken returns the unverified account holding token.
	FindByVerificationToken(ctx context.Context, token string) (*entity.User, error)

	// Create assigns an id when user.ID is nil. A taken email fails with domain ErrEmailInUse.
	Create(ctx context.Context, user *entity.User) error

	// Update writes every mutable field of an existing account.
	Update(ctx context.Context, user *entity.User) error
}
