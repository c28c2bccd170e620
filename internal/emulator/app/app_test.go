package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/workos/pkg/workos"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"EMULATOR_PORT", "EMULATOR_ISSUER", "EMULATOR_CLIENT_ID",
		"EMULATOR_CODE_TTL", "EMULATOR_SIGNING_KEYS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "http://localhost:8080", cfg.Issuer)
	require.Equal(t, "client_emulator", cfg.ClientID)
	require.Equal(t, 10*time.Minute, cfg.CodeTTL)
	require.Equal(t, 2, cfg.NumSigningKeys)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("EMULATOR_PORT", "9090")
	t.Setenv("EMULATOR_CODE_TTL", "30s")
	t.Setenv("EMULATOR_ACCESS_TOKEN_TTL", "5")
	t.Setenv("EMULATOR_HOUSEKEEPING_INTERVAL", "nonsense")
	t.Setenv("EMULATOR_ISSUER", "")

	cfg := LoadConfig()
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "http://localhost:9090", cfg.Issuer)
	require.Equal(t, 30*time.Second, cfg.CodeTTL)
	require.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func testConfig(t *testing.T, dir string) Config {
	t.Helper()

	return Config{
		DatabaseFile:         filepath.Join(dir, "emulator.db"),
		APIKey:               "sk_test_app",
		ClientID:             "client_app",
		Issuer:               "http://emulator.test",
		AccessTokenTTL:       time.Minute,
		CodeTTL:              time.Minute,
		HousekeepingInterval: time.Hour,
		MasterKey:            "test-master-key",
		NumSigningKeys:       1,
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
	}
}

func TestApplicationServesAndKeepsKeys(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	first, err := New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(first.Handler())
	w := workos.NewWithURL(cfg.APIKey, srv.URL)
	sso := workos.NewSSO(w)

	authURL, err := sso.GetAuthorizationURL(workos.AuthorizationURLOptions{
		ClientID:    cfg.ClientID,
		RedirectURI: "https://app.example.com/callback",
		Provider:    workos.ConnectionTypeOktaSAML,
	})
	require.NoError(t, err)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Get(authURL)
	require.NoError(t, err)
	resp.Body.Close()

	code, _, err := workos.ParseAuthorizationCallback(resp.Header.Get("Location"))
	require.NoError(t, err)

	res, err := sso.GetProfileAndToken(context.Background(), code, cfg.ClientID)
	require.NoError(t, err)

	srv.Close()
	require.NoError(t, first.db.Close())

	// A restart with the same master key accepts the earlier token.
	second, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })

	srv = httptest.NewServer(second.Handler())
	defer srv.Close()

	profile, err := workos.NewSSO(workos.NewWithURL(cfg.APIKey, srv.URL)).GetProfile(context.Background(), res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.Profile.ID, profile.ID)
}

func TestApplicationSeedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.SeedFile = filepath.Join(dir, "seed.yaml")

	require.NoError(t, os.WriteFile(cfg.SeedFile, []byte(`
connections:
  - id: conn_01J0000000000000000000000A
    name: Acme
    connection_type: GoogleOAuth
    profiles:
      - email: wile@acme.com
`), 0o600))

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	conns, err := a.db.Connections().ListConnections(context.Background())
	require.NoError(t, err)
	require.Len(t, conns, 1)
	require.Equal(t, "Acme", conns[0].Name)
}

func TestApplicationBadSeedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.SeedFile = filepath.Join(dir, "missing.yaml")

	_, err := New(cfg)
	require.Error(t, err)
}
