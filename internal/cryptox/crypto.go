// Package cryptox implements the password hashing used by the session
// service. Passwords are stretched with Argon2id and compared in constant time.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt stored next to each hash.
const SaltSize = 32

// HashPassword derives a 32-byte Argon2id hash of password with salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// CheckPassword reports whether password hashes to want under salt.
func CheckPassword(password []byte, salt []byte, want []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, want) == 1
}
