// Package service declares the collaborators the account and contact usecases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher turns account passwords into stored hashes and checks login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash is a mismatch.
	Check(password, hash string) bool
}
