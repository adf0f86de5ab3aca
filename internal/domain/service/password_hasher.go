// Package service defines interfaces for domain-level collaborators whose
// implementations live in the infra layer.
package service

// PasswordHasher abstracts password hashing so the use case layer never
// touches a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
