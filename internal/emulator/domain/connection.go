package domain

import "time"

// Connection states, as reported by the API.
const (
	ConnectionStateDraft      = "Draft"
	ConnectionStateActive     = "Active"
	ConnectionStateInactive   = "Inactive"
	ConnectionStateValidating = "Validating"
)

// Connection is an SSO connection between an organization and an identity
// provider.
type Connection struct {
	ID             string  // conn_ ULID
	OrganizationID *string // org_ ULID, nil for connections without one
	Name           string
	ConnectionType string // e.g. "OktaSAML"
	State          string
	Domains        []ConnectionDomain
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ConnectionDomain is a domain routed to a connection.
type ConnectionDomain struct {
	ID           string // conn_domain_ ULID
	ConnectionID string
	Domain       string
}

// IsActive reports whether users can sign in through the connection.
func (c *Connection) IsActive() bool {
	return c.State == ConnectionStateActive
}
