package domain

import "time"

// SigningKey is an access token signing key, encrypted at rest.
type SigningKey struct {
	Kid                 string    // Key identifier in JWKS (e.g., "key_abc123")
	Algorithm           string    // EdDSA
	PrivateKeyEncrypted []byte    // AES-256-GCM encrypted private key PEM
	CreatedAt           time.Time // When the key was created
}
