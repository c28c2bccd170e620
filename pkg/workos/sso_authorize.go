package workos

import (
	"fmt"
	"net/url"
)

// AuthorizationURLOptions selects what the user is sent to when starting an
// SSO flow. At least one of Connection, Organization or Provider is required.
type AuthorizationURLOptions struct {
	ClientID    string
	RedirectURI string

	// State is echoed back on the redirect URI untouched
	State string

	// Connection routes to a specific connection (conn_...)
	Connection string

	// Organization routes to the organization's active connection (org_...)
	Organization string

	// Provider selects an OAuth provider such as GoogleOAuth or MicrosoftOAuth
	Provider ConnectionType

	// DomainHint and LoginHint are forwarded to the identity provider
	DomainHint string
	LoginHint  string
}

// GetAuthorizationURL builds the URL to redirect a user to in order to
// start the SSO flow. The resulting code is exchanged with
// GetProfileAndToken.
func (s *SSO) GetAuthorizationURL(opts AuthorizationURLOptions) (string, error) {
	if opts.ClientID == "" {
		return "", &ConfigurationError{Message: "client ID is required"}
	}
	if opts.RedirectURI == "" {
		return "", &ConfigurationError{Message: "redirect URI is required"}
	}
	if opts.Connection == "" && opts.Organization == "" && opts.Provider == "" {
		return "", &ConfigurationError{Message: "connection, organization or provider is required"}
	}

	params := url.Values{}
	params.Set("client_id", opts.ClientID)
	params.Set("redirect_uri", opts.RedirectURI)
	params.Set("response_type", "code")

	if opts.State != "" {
		params.Set("state", opts.State)
	}
	if opts.Connection != "" {
		params.Set("connection", opts.Connection)
	}
	if opts.Organization != "" {
		params.Set("organization", opts.Organization)
	}
	if opts.Provider != "" {
		params.Set("provider", opts.Provider.String())
	}
	if opts.DomainHint != "" {
		params.Set("domain_hint", opts.DomainHint)
	}
	if opts.LoginHint != "" {
		params.Set("login_hint", opts.LoginHint)
	}

	return fmt.Sprintf("%s/sso/authorize?%s", s.workos.BaseURL, params.Encode()), nil
}

// GetJWKSURL returns the URL of the key set that verifies access tokens
// issued for clientID.
func (s *SSO) GetJWKSURL(clientID string) (string, error) {
	if clientID == "" {
		return "", &ConfigurationError{Message: "client ID is required"}
	}
	return s.workos.url("/sso/jwks/" + url.PathEscape(clientID)), nil
}

// ParseAuthorizationCallback extracts the authorization code and state from
// the URL the user was redirected to. An error parameter on the callback is
// returned as an error.
func ParseAuthorizationCallback(callbackURL string) (code, state string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse callback URL: %w", err)
	}

	query := u.Query()

	if errorCode := query.Get("error"); errorCode != "" {
		return "", "", fmt.Errorf("authorization error: %s - %s", errorCode, query.Get("error_description"))
	}

	code = query.Get("code")
	if code == "" {
		return "", "", fmt.Errorf("callback missing authorization code")
	}

	return code, query.Get("state"), nil
}
