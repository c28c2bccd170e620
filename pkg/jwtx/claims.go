package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for SSO access tokens.
const DefaultAccessTokenTTL = 10 * time.Minute

// Claims are the access-token claims issued after an SSO code exchange. The
// subject is the profile id.
type Claims struct {
	jwt.RegisteredClaims

	// Connection the profile authenticated through (conn_...)
	ConnectionID string `json:"connection_id,omitempty"`

	// Organization of the connection, when it has one (org_...)
	OrganizationID string `json:"organization_id,omitempty"`
}

// AccessClaimsParams groups the inputs of NewAccessClaims.
type AccessClaimsParams struct {
	Subject        string
	ClientID       string
	ConnectionID   string
	OrganizationID string
	Issuer         string
	TTL            time.Duration
	Now            time.Time
}

// NewAccessClaims builds minimally-correct claims. The client id is the
// audience.
func NewAccessClaims(p AccessClaimsParams) Claims {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.Subject,
			Audience:  jwt.ClaimStrings{p.ClientID},
			IssuedAt:  jwt.NewNumericDate(p.Now),
			NotBefore: jwt.NewNumericDate(p.Now),
			ExpiresAt: jwt.NewNumericDate(p.Now.Add(ttl)),
			ID:        NewJTI(),
		},
		ConnectionID:   p.ConnectionID,
		OrganizationID: p.OrganizationID,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiryWithLeeway checks exp and nbf, allowing leeway for clock
// skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
