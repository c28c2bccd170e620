package domain

import "time"

// Profile is the identity a connection's provider asserts for a user.
type Profile struct {
	ID            string // prof_ ULID
	ConnectionID  string
	IdpID         string
	Email         string
	FirstName     *string
	LastName      *string
	Groups        []string
	RawAttributes map[string]any
	CreatedAt     time.Time
}

// ProfileView joins a profile with the fields it inherits from its
// connection.
type ProfileView struct {
	Profile
	ConnectionType string
	OrganizationID *string
}
