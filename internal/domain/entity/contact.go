package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry. It belongs to exactly one user and is only
// visible or mutable through that user's session.
type Contact struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Email     string
	Phone     string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactFields is the replaceable part of a contact.
type ContactFields struct {
	Name  string
	Email string
	Phone string
}

// Complete reports whether every field required by a full update is present.
func (f ContactFields) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Phone != ""
}
