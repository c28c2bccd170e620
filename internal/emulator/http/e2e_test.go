package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	emuhttp "github.com/aussiebroadwan/workos/internal/emulator/http"
	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/internal/emulator/store/drivers/sqlite"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/aussiebroadwan/workos/pkg/workos"
	"github.com/stretchr/testify/require"
)

const (
	clientID     = "client_emulator"
	apiKey       = "sk_test_e2e"
	redirectURI  = "https://app.example.com/callback"
	connectionID = "conn_01E4ZCR3C56J083X43JQXF3JK5"
)

func newEmulator(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "emulator.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	seed := &service.SeedService{Store: st}
	_, err = seed.SeedConnections(ctx, service.DefaultSeedData())
	require.NoError(t, err)
	_, err = seed.EnsureAPIKey(ctx, apiKey)
	require.NoError(t, err)

	srv := httptest.NewUnstartedServer(nil)
	issuer := "http://" + srv.Listener.Addr().String()

	km, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{
		Issuer:   issuer,
		Audience: []string{clientID},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	apiKeys := &service.APIKeyService{Store: st}

	router := emuhttp.NewRouter(km.Verifier, "test", st, logger)
	router.AuthorizeService = &service.AuthorizeService{Store: st, ClientID: clientID, CodeTTL: time.Minute}
	router.TokenService = &service.TokenService{
		KeyManager: km,
		Store:      st,
		APIKeys:    apiKeys,
		ClientID:   clientID,
		Issuer:     issuer,
		AccessTTL:  time.Minute,
	}
	router.ConnectionService = &service.ConnectionService{Store: st}
	router.APIKeyService = apiKeys
	router.ApplyRoutes()

	srv.Config.Handler = router
	srv.Start()
	t.Cleanup(srv.Close)
	return srv
}

// signIn follows the authorization URL up to the redirect and returns the
// code it carries.
func signIn(t *testing.T, sso *workos.SSO, opts workos.AuthorizationURLOptions) (code, state string) {
	t.Helper()

	authURL, err := sso.GetAuthorizationURL(opts)
	require.NoError(t, err)

	resp, err := noRedirect().Get(authURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	code, state, err = workos.ParseAuthorizationCallback(resp.Header.Get("Location"))
	require.NoError(t, err)
	return code, state
}

func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func TestSSOFlow(t *testing.T) {
	srv := newEmulator(t)
	ctx := context.Background()

	w := workos.NewWithURL(apiKey, srv.URL)
	sso := workos.NewSSO(w)

	code, state := signIn(t, sso, workos.AuthorizationURLOptions{
		ClientID:    clientID,
		RedirectURI: redirectURI,
		Connection:  connectionID,
		State:       "xyz",
	})
	require.Equal(t, "xyz", state)

	res, err := sso.GetProfileAndToken(ctx, code, clientID)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, "todd@foo-corp.com", res.Profile.Email)
	require.Equal(t, workos.ConnectionTypeOktaSAML, res.Profile.ConnectionType)
	require.Equal(t, connectionID, res.Profile.ConnectionID)
	require.Equal(t, []string{"Engineering", "Admins"}, res.Profile.Groups)

	profile, err := sso.GetProfile(ctx, res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.Profile, *profile)

	w.SetAPIKey(apiKey)
	conn, err := sso.GetConnection(ctx, connectionID)
	require.NoError(t, err)
	require.Equal(t, "Foo Corp", conn.Name)
	require.Equal(t, workos.ConnectionStateActive, conn.State)
	require.Len(t, conn.Domains, 1)
	require.NotEmpty(t, conn.CreatedAt)

	t.Run("code is single use", func(t *testing.T) {
		_, err := sso.GetProfileAndToken(ctx, code, clientID)

		var reqErr *workos.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
		require.Equal(t, "invalid_grant", reqErr.Code)
	})

	t.Run("jwks verifies the access token", func(t *testing.T) {
		jwksURL, err := sso.GetJWKSURL(clientID)
		require.NoError(t, err)

		resp, err := http.Get(jwksURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var jwks jwtx.JWKS
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&jwks))
		require.NotEmpty(t, jwks.Keys)

		keys := jwtx.NewKeySet()
		for _, k := range jwks.Keys {
			require.NoError(t, keys.AddJWK(k))
		}
		v := jwtx.NewVerifierEdDSA(keys, srv.URL, []string{clientID}, 0)

		claims, err := v.Verify(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, res.Profile.ID, claims.Subject)
	})
}

func TestSSOErrors(t *testing.T) {
	srv := newEmulator(t)
	ctx := context.Background()

	t.Run("wrong secret", func(t *testing.T) {
		good := workos.NewSSO(workos.NewWithURL(apiKey, srv.URL))
		code, _ := signIn(t, good, workos.AuthorizationURLOptions{
			ClientID:     clientID,
			RedirectURI:  redirectURI,
			Organization: "org_01EHWNCE74X7JSDV0X3SZ3KJNY",
		})

		bad := workos.NewSSO(workos.NewWithURL("sk_test_wrong", srv.URL))
		_, err := bad.GetProfileAndToken(ctx, code, clientID)

		var reqErr *workos.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
		require.Equal(t, "invalid_client", reqErr.Code)
	})

	t.Run("unknown connection", func(t *testing.T) {
		w := workos.NewWithURL(apiKey, srv.URL)
		w.SetAPIKey(apiKey)

		_, err := workos.NewSSO(w).GetConnection(ctx, "conn_01HZZZZZZZZZZZZZZZZZZZZZZZ")

		var reqErr *workos.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusNotFound, reqErr.StatusCode)
		require.Equal(t, "entity_not_found", reqErr.Code)
	})

	t.Run("connection needs a valid api key", func(t *testing.T) {
		w := workos.NewWithURL(apiKey, srv.URL)
		w.SetAPIKey("sk_test_wrong")

		_, err := workos.NewSSO(w).GetConnection(ctx, connectionID)

		var reqErr *workos.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	})

	t.Run("invalid access token", func(t *testing.T) {
		_, err := workos.NewSSO(workos.NewWithURL(apiKey, srv.URL)).GetProfile(ctx, "not-a-jwt")

		var reqErr *workos.RequestError
		require.ErrorAs(t, err, &reqErr)
		require.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	})

	t.Run("unknown jwks client", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/sso/jwks/client_other")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAuthorizeErrors(t *testing.T) {
	srv := newEmulator(t)

	t.Run("unknown connection redirects with error", func(t *testing.T) {
		q := url.Values{
			"client_id":     {clientID},
			"redirect_uri":  {redirectURI},
			"response_type": {"code"},
			"connection":    {"conn_01HZZZZZZZZZZZZZZZZZZZZZZZ"},
			"state":         {"s1"},
		}
		resp, err := noRedirect().Get(srv.URL + "/sso/authorize?" + q.Encode())
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)

		loc, err := url.Parse(resp.Header.Get("Location"))
		require.NoError(t, err)
		require.Equal(t, "connection_invalid", loc.Query().Get("error"))
		require.Equal(t, "s1", loc.Query().Get("state"))

		_, _, err = workos.ParseAuthorizationCallback(loc.String())
		require.ErrorContains(t, err, "connection_invalid")
	})

	t.Run("unknown client is not redirected", func(t *testing.T) {
		q := url.Values{
			"client_id":     {"client_other"},
			"redirect_uri":  {redirectURI},
			"response_type": {"code"},
			"connection":    {connectionID},
		}
		resp, err := noRedirect().Get(srv.URL + "/sso/authorize?" + q.Encode())
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTokenEndpointForms(t *testing.T) {
	srv := newEmulator(t)
	sso := workos.NewSSO(workos.NewWithURL(apiKey, srv.URL))

	code, _ := signIn(t, sso, workos.AuthorizationURLOptions{
		ClientID:    clientID,
		RedirectURI: redirectURI,
		Provider:    workos.ConnectionTypeOktaSAML,
	})

	t.Run("malformed json", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/sso/token", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsupported grant", func(t *testing.T) {
		body := `{"client_id":"client_emulator","client_secret":"sk_test_e2e","code":"x","grant_type":"password"}`
		resp, err := http.Post(srv.URL+"/sso/token", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var oauthErr struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&oauthErr))
		require.Equal(t, "unsupported_grant_type", oauthErr.Error)
	})

	t.Run("form encoded", func(t *testing.T) {
		resp, err := http.PostForm(srv.URL+"/sso/token", url.Values{
			"client_id":     {clientID},
			"client_secret": {apiKey},
			"code":          {code},
			"grant_type":    {"authorization_code"},
		})
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

		var body workos.ProfileAndToken
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "profile", body.Profile.Object)
	})
}

func TestHealth(t *testing.T) {
	srv := newEmulator(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)

		var health emuhttp.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
	}
}

func TestListConnections(t *testing.T) {
	srv := newEmulator(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/connections?connection_type=OktaSAML", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list emuhttp.ConnectionList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	require.Equal(t, connectionID, list.Data[0].ID)
}
