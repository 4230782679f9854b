// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/md5" //nolint:gosec // gravatar addresses images by the md5 of the email
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// User is an account that owns contacts.
type User struct {
	ID                uuid.UUID        // Store-assigned identifier.
	Email             string           // Unique login identifier, stored normalized.
	PasswordHash      string           // bcrypt hash, never the raw password.
	AvatarURL         string           // Identicon by default, served path after an upload.
	Subscription      SubscriptionTier // Plan, starter unless changed.
	Verified          bool             // Set once the user followed the verification link.
	VerificationToken *string          // Non-nil exactly while Verified is false.
	Token             string           // Last issued bearer token, empty after logout.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUser builds an unverified starter account for email with the given password hash
// and verification token.
func NewUser(email, passwordHash, verificationToken string) *User {
	email = NormalizeEmail(email)

	return &User{
		Email:             email,
		PasswordHash:      passwordHash,
		AvatarURL:         DefaultAvatarURL(email),
		Subscription:      SubscriptionStarter,
		Verified:          false,
		VerificationToken: &verificationToken,
	}
}

// MarkVerified flips the account to verified and drops the verification token.
// It is the only place Verified becomes true.
func (u *User) MarkVerified() {
	u.Verified = true
	u.VerificationToken = nil
}

// PendingVerificationToken returns the outstanding verification token, or "" when none is held.
func (u *User) PendingVerificationToken() string {
	if u.VerificationToken == nil {
		return ""
	}

	return *u.VerificationToken
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DefaultAvatarURL derives the identicon URL for an email address.
func DefaultAvatarURL(email string) string {
	sum := md5.Sum([]byte(NormalizeEmail(email))) //nolint:gosec

	query := url.Values{}
	query.Set("d", "identicon")
	query.Set("s", "250")

	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?" + query.Encode()
}
