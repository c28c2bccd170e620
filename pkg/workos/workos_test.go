package workos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNew(t *testing.T) {
	t.Parallel()

	w := New("sk_test")
	require.Equal(t, "sk_test", w.SecretKey)
	require.Equal(t, DefaultBaseURL, w.BaseURL)
	require.NotNil(t, w.HTTPClient)
	require.Equal(t, "https://api.workos.com/sso/token", w.url("/sso/token"))
}

func TestNewWithURL(t *testing.T) {
	t.Parallel()

	w := NewWithURL("sk_test", "http://localhost:8080/")
	require.Equal(t, "http://localhost:8080", w.BaseURL)
	require.Equal(t, "http://localhost:8080/connections/conn_1", w.url("/connections/conn_1"))
}

func TestAPIKey(t *testing.T) {
	t.Parallel()

	t.Run("unset", func(t *testing.T) {
		w := New("sk_test")

		key, err := w.APIKey()
		require.Empty(t, key)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Equal(t, "invalid input: API key should be set", err.Error())
	})

	t.Run("set", func(t *testing.T) {
		w := New("sk_test")
		w.SetAPIKey("sk_first")

		key, err := w.APIKey()
		require.NoError(t, err)
		require.Equal(t, "sk_first", key)
	})

	t.Run("overwrite", func(t *testing.T) {
		w := New("sk_test")
		w.SetAPIKey("sk_first")
		w.SetAPIKey("sk_second")

		key, err := w.APIKey()
		require.NoError(t, err)
		require.Equal(t, "sk_second", key)
	})
}

func TestConnectionTypeDecoding(t *testing.T) {
	t.Parallel()

	for ct := range connectionTypes {
		var got ConnectionType
		raw, _ := json.Marshal(string(ct))
		require.NoError(t, json.Unmarshal(raw, &got), ct)
		require.Equal(t, ct, got)
	}
	require.Len(t, connectionTypes, 32)

	var got ConnectionType
	require.Error(t, json.Unmarshal([]byte(`"oktasaml"`), &got))
	require.Error(t, json.Unmarshal([]byte(`""`), &got))
	require.Error(t, json.Unmarshal([]byte(`42`), &got))

	_, err := ParseConnectionType("OktaSAML")
	require.NoError(t, err)
	require.False(t, ConnectionType("Unknown").IsValid())
}

func TestConnectionStateDecoding(t *testing.T) {
	t.Parallel()

	for _, s := range []ConnectionState{
		ConnectionStateDraft,
		ConnectionStateActive,
		ConnectionStateInactive,
		ConnectionStateValidating,
	} {
		var got ConnectionState
		raw, _ := json.Marshal(string(s))
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Equal(t, s, got)
	}

	var got ConnectionState
	require.Error(t, json.Unmarshal([]byte(`"draft"`), &got))
	require.Error(t, json.Unmarshal([]byte(`null`), &got))
}

func TestRequestErrorMessage(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: http.StatusNotFound}

	err := parseErrorResponse(resp, nil)
	require.Equal(t, "request failed with status: 404 Not Found", err.Error())

	err = parseErrorResponse(resp, []byte(`{"message":"Could not find connection."}`))
	require.Equal(t, "request failed with status: 404 Not Found: Could not find connection.", err.Error())

	err = parseErrorResponse(resp, []byte(`{"code":"entity_not_found","message":"gone"}`))
	require.Equal(t, "request failed with status: 404 Not Found: entity_not_found: gone", err.Error())
}

func TestGetAuthorizationURL(t *testing.T) {
	t.Parallel()

	sso := NewSSO(NewWithURL("sk_test", "https://api.example.com"))

	t.Run("connection", func(t *testing.T) {
		raw, err := sso.GetAuthorizationURL(AuthorizationURLOptions{
			ClientID:    "client_1",
			RedirectURI: "https://app.example.com/callback",
			Connection:  "conn_1",
			State:       "xyz",
		})
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		require.Equal(t, "api.example.com", u.Host)
		require.Equal(t, "/sso/authorize", u.Path)
		require.Equal(t, url.Values{
			"client_id":     {"client_1"},
			"redirect_uri":  {"https://app.example.com/callback"},
			"response_type": {"code"},
			"connection":    {"conn_1"},
			"state":         {"xyz"},
		}, u.Query())
	})

	t.Run("provider with hints", func(t *testing.T) {
		raw, err := sso.GetAuthorizationURL(AuthorizationURLOptions{
			ClientID:    "client_1",
			RedirectURI: "https://app.example.com/callback",
			Provider:    ConnectionTypeGoogleOAuth,
			DomainHint:  "foo-corp.com",
			LoginHint:   "alan@foo-corp.com",
		})
		require.NoError(t, err)
		require.Contains(t, raw, "provider=GoogleOAuth")
		require.Contains(t, raw, "domain_hint=foo-corp.com")
		require.Contains(t, raw, "login_hint=alan%40foo-corp.com")
		require.NotContains(t, raw, "state=")
	})

	t.Run("missing selector", func(t *testing.T) {
		_, err := sso.GetAuthorizationURL(AuthorizationURLOptions{
			ClientID:    "client_1",
			RedirectURI: "https://app.example.com/callback",
		})
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("missing redirect", func(t *testing.T) {
		_, err := sso.GetAuthorizationURL(AuthorizationURLOptions{ClientID: "client_1", Organization: "org_1"})
		require.Error(t, err)
	})
}

func TestGetJWKSURL(t *testing.T) {
	t.Parallel()

	sso := NewSSO(New("sk_test"))

	u, err := sso.GetJWKSURL("client_123")
	require.NoError(t, err)
	require.Equal(t, "https://api.workos.com/sso/jwks/client_123", u)

	_, err = sso.GetJWKSURL("")
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParseAuthorizationCallback(t *testing.T) {
	t.Parallel()

	t.Run("code and state", func(t *testing.T) {
		code, state, err := ParseAuthorizationCallback("https://app.example.com/callback?code=01E2RJ4C05B52KKZ8FSRDAP23J&state=xyz")
		require.NoError(t, err)
		require.Equal(t, "01E2RJ4C05B52KKZ8FSRDAP23J", code)
		require.Equal(t, "xyz", state)
	})

	t.Run("error response", func(t *testing.T) {
		_, _, err := ParseAuthorizationCallback("https://app.example.com/callback?error=access_denied&error_description=User+cancelled")
		require.Error(t, err)
		require.Contains(t, err.Error(), "access_denied")
		require.Contains(t, err.Error(), "User cancelled")
	})

	t.Run("missing code", func(t *testing.T) {
		_, _, err := ParseAuthorizationCallback("https://app.example.com/callback?state=xyz")
		require.ErrorContains(t, err, "missing authorization code")
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, _, err := ParseAuthorizationCallback("://invalid-url")
		require.ErrorContains(t, err, "parse")
	})
}

func TestLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	sso, w := newTestSSO(t, respond(http.StatusOK, profileBody))
	w.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	_, err := sso.GetProfile(context.Background(), "tok")
	require.NoError(t, err)

	// The single token is spent, so the next call must give up with the context.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = sso.GetProfile(ctx, "tok")
	require.ErrorContains(t, err, "rate limiter")
}
