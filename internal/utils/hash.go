package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret computes a one-way, salted digest of the given plaintext
// suitable for storage.
//
// The plaintext is pre-digested with SHA-256 (base64-encoded) before being
// passed to bcrypt. bcrypt silently ignores input beyond 72 bytes, and the
// same primitive is used both for user passwords and for raw JWT strings,
// which always exceed that limit. The pre-digest keeps every input inside
// bcrypt's effective range without weakening the work factor.
//
// Parameters:
//
//	plaintext - secret value to be hashed (password or raw token)
//
// Returns:
//
//	string - bcrypt hash in its standard self-describing encoding
//	error  - non-nil if bcrypt fails (e.g. invalid cost)
//
// Example usage:
//
//	hash, err := utils.HashSecret("super-secret")
func HashSecret(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(preDigest(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(hash), nil
}

// CompareWithHash reports whether candidate is the plaintext behind the
// given bcrypt hash produced by HashSecret.
//
// The comparison is performed by bcrypt and is safe against timing attacks.
// Any bcrypt error (malformed hash, mismatch) yields false; callers never
// need to distinguish the two cases.
func CompareWithHash(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), preDigest(candidate)) == nil
}

// preDigest maps an arbitrary-length secret onto a fixed-size bcrypt input.
// The base64 step avoids NUL bytes in the bcrypt input.
func preDigest(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	encoded := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(encoded, sum[:])
	return encoded
}
