package domain

import "time"

// AuthorizationCode is a one-time code issued by the authorize endpoint and
// redeemed for a profile and access token.
type AuthorizationCode struct {
	ID          string
	CodeHash    string
	ClientID    string
	ProfileID   string
	RedirectURI string
	ExpiresAt   time.Time
	UsedAt      *time.Time
	CreatedAt   time.Time
}

// IsRedeemable reports whether the code is unused and unexpired at now.
func (c *AuthorizationCode) IsRedeemable(now time.Time) bool {
	return c.UsedAt == nil && now.Before(c.ExpiresAt)
}
