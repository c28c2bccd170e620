package workos

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// SSO is the client for the Single Sign-On endpoints.
type SSO struct {
	workos *WorkOS
}

// NewSSO creates an SSO client backed by the given configuration holder.
// Later changes to w, such as SetAPIKey, are visible to the client.
func NewSSO(w *WorkOS) *SSO {
	return &SSO{workos: w}
}

// GetProfileAndToken exchanges an authorization code, received on the
// redirect URI at the end of the SSO flow, for an access token and the
// profile of the user who signed in.
func (s *SSO) GetProfileAndToken(ctx context.Context, code, clientID string) (*ProfileAndToken, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &ConfigurationError{Message: "authorization code is required"}
	}
	if strings.TrimSpace(clientID) == "" {
		return nil, &ConfigurationError{Message: "client ID is required"}
	}

	data := tokenRequest{
		ClientID:     clientID,
		ClientSecret: s.workos.SecretKey,
		Code:         code,
		GrantType:    grantTypeAuthorizationCode,
	}

	resp, err := s.workos.doRequest(ctx, http.MethodPost, "/sso/token", data, nil)
	if err != nil {
		return nil, err
	}

	var body ProfileAndToken
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}

	return &body, nil
}

// GetProfile fetches the profile that an access token, as returned by
// GetProfileAndToken, was issued for.
func (s *SSO) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	resp, err := s.workos.doBearerRequest(ctx, http.MethodGet, "/sso/profile", accessToken)
	if err != nil {
		return nil, err
	}

	var body Profile
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}

	return &body, nil
}

// GetConnection fetches a connection by ID. It requires an API key; without
// one it fails with a *ConfigurationError before sending anything.
func (s *SSO) GetConnection(ctx context.Context, connectionID string) (*Connection, error) {
	apiKey, err := s.workos.APIKey()
	if err != nil {
		return nil, err
	}

	resp, err := s.workos.doBearerRequest(ctx, http.MethodGet, "/connections/"+url.PathEscape(connectionID), apiKey)
	if err != nil {
		return nil, err
	}

	var body Connection
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}

	return &body, nil
}
