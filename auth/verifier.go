// Package auth provides credential verification for the admin session.
//
// The server mounts none of this: routes are open, and admin gating lives
// entirely in the client, matching the deployed behavior. The abstraction
// exists so the client-side key check can be swapped for something real
// without touching session logic.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminKey is the shared admin secret the client ships with.
const DefaultAdminKey = "admin123"

// CredentialVerifier reports whether an entered credential grants admin access.
type CredentialVerifier interface {
	Verify(input string) bool
}

type staticKey struct {
	key string
}

// StaticKey returns a verifier comparing input against a fixed key in
// constant time.
func StaticKey(key string) CredentialVerifier {
	return staticKey{key: key}
}

func (s staticKey) Verify(input string) bool {
	return subtle.ConstantTimeCompare([]byte(s.key), []byte(input)) == 1
}

type bcryptHash struct {
	hash []byte
}

// BcryptHash returns a verifier comparing input against a bcrypt hash, for
// deployments that do not want the key in source.
func BcryptHash(hash []byte) CredentialVerifier {
	return bcryptHash{hash: hash}
}

func (b bcryptHash) Verify(input string) bool {
	return bcrypt.CompareHashAndPassword(b.hash, []byte(input)) == nil
}
