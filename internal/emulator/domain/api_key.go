package domain

import "time"

// APIKey is a secret key accepted on management endpoints and as the
// client_secret of the token exchange. Only its Argon2id hash is stored.
type APIKey struct {
	ID         string
	Name       string
	KeyHash    string
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
