// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
// Verify additionally rejects accounts whose email is not verified yet.
type LoginInput struct {
	Email    string
	Password string
	Verify   bool
}

// AvatarUpload is a raw uploaded picture.
type AvatarUpload struct {
	Filename string
	Content  io.Reader
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Current(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	VerifyEmail(ctx context.Context, verificationToken string) error
	ResendVerification(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, userID uuid.UUID, upload AvatarUpload) (string, error)
	UpdateSubscription(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) (*entity.User, error)
}
