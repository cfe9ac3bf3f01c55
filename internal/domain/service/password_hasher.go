// Package service defines contracts for stateless collaborators the
// usecases depend on. Implementations live under internal/infra.
package service

// PasswordHasher hashes login passwords and checks candidates against a
// stored hash. The hash format is owned by the implementation.
type PasswordHasher interface {
	// Hash produces a salted hash of the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
