// Package cryptox implements the password-derived verifier scheme used
// for authentication. The client derives a master key from the password
// and the per-wallet salt, and only the verifier (a hash of that key)
// ever crosses the wire.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey stretches a password with Argon2id using the given salt.
// The result is 32 bytes and is never sent to the server.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value stored server-side and compared on login.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}
