package usecase

import (
	"context"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateContactInput defines a new contact. A nil Favorite stores false.
type CreateContactInput struct {
	Name     string
	Email    string
	Phone    string
	Favorite *bool
}

// ContactUsecase defines the operations on a user's contact list.
// ownerID always comes from the authenticated session.
type ContactUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID, filter repository.ContactFilter) ([]*entity.Contact, error)
	GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, ownerID uuid.UUID, input CreateContactInput) (*entity.Contact, error)
	Remove(ctx context.Context, ownerID, contactID uuid.UUID) error
	Update(ctx context.Context, ownerID, contactID uuid.UUID, fields entity.ContactFields) (*entity.Contact, error)
	// UpdateFavorite sets the flag; a nil favorite means true.
	UpdateFavorite(ctx context.Context, ownerID, contactID uuid.UUID, favorite *bool) (*entity.Contact, error)
}
