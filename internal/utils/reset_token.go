package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// resetSecretBytes is the entropy of a generated reset secret. 20 random
// bytes hex-encode to a 40-character secret.
const resetSecretBytes = 20

// NewResetSecret generates a high-entropy password reset secret and its
// storable digest.
//
// The plaintext secret is returned to the caller exactly once, to be handed
// to an external notifier; only the SHA-256 hex digest is ever persisted.
func NewResetSecret() (secret string, digest string, err error) {
	buf := make([]byte, resetSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating reset secret: %w", err)
	}

	secret = hex.EncodeToString(buf)
	return secret, HashResetSecret(secret), nil
}

// HashResetSecret computes the SHA-256 hex digest of a plaintext reset
// secret. The digest — never the secret — is what the credential store keeps
// and matches against.
func HashResetSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
