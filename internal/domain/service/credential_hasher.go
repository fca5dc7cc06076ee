// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type CredentialHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls with
	// the same plaintext produce different hashes, both of which verify.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It never errors: a malformed hash simply verifies false.
	Check(password, hash string) bool
}
