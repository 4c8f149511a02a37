// Package service defines interfaces for domain services that are
// implemented by the infrastructure layer.
package service

// PasswordHasher abstracts one-way password hashing so the account store and
// demo dataset generator do not depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
