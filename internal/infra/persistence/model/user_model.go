package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the repository before insert.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	AvatarURL         string    `gorm:"type:varchar(512)"`
	Subscription      string    `gorm:"type:varchar(16);not null"`
	Verified          bool      `gorm:"not null;default:false"`
	VerificationToken *string   `gorm:"type:varchar(64);index"`
	Token             string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Contacts []ContactModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
