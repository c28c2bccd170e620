package workos

// ============================================================================
// SSO Types
// ============================================================================

// ProfileAndToken is the response of the POST /sso/token endpoint.
type ProfileAndToken struct {
	// AccessToken authenticates later calls to GET /sso/profile
	AccessToken string `json:"access_token"`

	// Profile is the user that completed the SSO flow
	Profile Profile `json:"profile"`
}

// Profile is a user as reported by the identity provider behind a connection.
type Profile struct {
	// Object is always "profile" when the API sets it
	Object string `json:"object,omitempty"`

	// ID is the WorkOS profile identifier (prof_...)
	ID string `json:"id"`

	// IdpID is the user's identifier at the identity provider
	IdpID string `json:"idp_id"`

	// ConnectionID is the connection the user signed in through (conn_...)
	ConnectionID string `json:"connection_id"`

	// ConnectionType is the provider behind ConnectionID
	ConnectionType ConnectionType `json:"connection_type"`

	// Email is the user's email address
	Email string `json:"email"`

	// Optional attributes, absent when the provider did not send them
	OrganizationID *string        `json:"organization_id,omitempty"`
	FirstName      *string        `json:"first_name,omitempty"`
	LastName       *string        `json:"last_name,omitempty"`
	Groups         []string       `json:"groups,omitempty"`
	RawAttributes  map[string]any `json:"raw_attributes,omitempty"`
}

// tokenRequest is the JSON body of POST /sso/token.
type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	GrantType    string `json:"grant_type"`
}

// grantTypeAuthorizationCode is the only grant the token endpoint accepts.
const grantTypeAuthorizationCode = "authorization_code"

// ============================================================================
// Connection Types
// ============================================================================

// Connection is an SSO connection between an organization and an identity
// provider.
type Connection struct {
	// Object is always "connection" when the API sets it
	Object string `json:"object,omitempty"`

	// ID is the connection identifier (conn_...)
	ID string `json:"id"`

	// OrganizationID is nil for connections not bound to an organization
	OrganizationID *string `json:"organization_id,omitempty"`

	// Name is the display name of the connection
	Name string `json:"name"`

	// State is the lifecycle state of the connection
	State ConnectionState `json:"state"`

	// ConnectionType is the provider behind the connection
	ConnectionType ConnectionType `json:"connection_type"`

	// Domains lists the email domains routed to this connection
	Domains []ConnectionDomain `json:"domains,omitempty"`

	// CreatedAt and UpdatedAt are kept verbatim as the API formats them
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ConnectionDomain is an email domain attached to a connection.
type ConnectionDomain struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Domain string `json:"domain"`
}
