package repository

import (
	"context"

	"contactbook/internal/domain/entity"
	"contactbook/internal/errors"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when no contact matches the lookup.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilter narrows an owner's contact list.
type ContactFilter struct {
	Favorite *bool
}

// ContactRepository persists contacts. Methods taking an ownerID only ever touch
// rows belonging to that owner.
type ContactRepository interface {
	// ListByOwner returns the owner's contacts, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ContactFilter) ([]*entity.Contact, error)

	// FindByID looks a contact up by id regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// Exists reports whether any contact has the id, regardless of owner.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// UpdateByOwner replaces name, email and phone and returns the stored contact.
	UpdateByOwner(ctx context.Context, ownerID, id uuid.UUID, fields entity.ContactFields) (*entity.Contact, error)

	// SetFavoriteByOwner sets the favorite flag and returns the stored contact.
	SetFavoriteByOwner(ctx context.Context, ownerID, id uuid.UUID, favorite bool) (*entity.Contact, error)

	// DeleteByOwner removes a contact. Deleting a missing row is not an error.
	DeleteByOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
