package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface of the emulator. Sub-repositories
// keep concerns tidy and stop transactions being opened inside transactions.
type Store interface {
	Connections() Connections
	Profiles() Profiles
	AuthorizationCodes() AuthorizationCodes
	APIKeys() APIKeys
	SigningKeys() SigningKeys

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled back
	// when fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Connections interface {
	// CreateConnection inserts a connection and its domains.
	CreateConnection(ctx context.Context, c domain.Connection) error

	// GetConnectionByID returns a connection with its domains.
	GetConnectionByID(ctx context.Context, id string) (domain.Connection, error)

	// GetActiveConnectionByOrganization returns the oldest active connection
	// of an organization.
	GetActiveConnectionByOrganization(ctx context.Context, organizationID string) (domain.Connection, error)

	// GetActiveConnectionByType returns the oldest active connection of a
	// provider type, used for provider based sign in.
	GetActiveConnectionByType(ctx context.Context, connectionType string) (domain.Connection, error)

	// ListConnections returns all connections ordered by creation date.
	ListConnections(ctx context.Context) ([]domain.Connection, error)

	// IsEmpty returns true if there are no connections.
	IsEmpty(ctx context.Context) (bool, error)
}

type Profiles interface {
	// CreateProfile inserts a profile (id is provided by the caller via idx).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// GetProfileByID returns a profile joined with its connection.
	GetProfileByID(ctx context.Context, id string) (domain.ProfileView, error)

	// GetProfileByConnection returns the first profile of a connection.
	GetProfileByConnection(ctx context.Context, connectionID string) (domain.ProfileView, error)

	// GetProfileByEmail returns the profile with the given email on a connection.
	GetProfileByEmail(ctx context.Context, connectionID, email string) (domain.ProfileView, error)
}

type AuthorizationCodes interface {
	// CreateAuthorizationCode stores a freshly minted authorization code.
	CreateAuthorizationCode(ctx context.Context, code domain.AuthorizationCode) error

	// GetAuthorizationCodeByHash fetches a code by its fingerprint when redeeming.
	GetAuthorizationCodeByHash(ctx context.Context, hash string) (domain.AuthorizationCode, error)

	// MarkAuthorizationCodeUsed marks an unused code as consumed. A code that
	// is missing or already used reports ErrNotFound.
	MarkAuthorizationCodeUsed(ctx context.Context, id string, at time.Time) error

	// DeleteExpiredAuthorizationCodes removes codes that expired before now.
	DeleteExpiredAuthorizationCodes(ctx context.Context, now time.Time) (int64, error)
}

type APIKeys interface {
	// CreateAPIKey stores a hashed API key.
	CreateAPIKey(ctx context.Context, k domain.APIKey) error

	// ListAPIKeys returns every stored key.
	ListAPIKeys(ctx context.Context) ([]domain.APIKey, error)

	// TouchAPIKey records the last time a key was used.
	TouchAPIKey(ctx context.Context, id string, at time.Time) error

	// IsEmpty returns true if there are no API keys.
	IsEmpty(ctx context.Context) (bool, error)
}

type SigningKeys interface {
	// CreateSigningKey stores a new signing key with encrypted private key material.
	CreateSigningKey(ctx context.Context, key domain.SigningKey) error

	// ListSigningKeys returns all signing keys ordered by creation date.
	ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error)
}
