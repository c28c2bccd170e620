package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestJWKPEM(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwk := jwtx.NewEd25519JWK("test-key-id", "sig", "EdDSA", publicKey)

	pemStr, err := jwk.PEM()
	require.NoError(t, err)

	block, _ := pem.Decode([]byte(pemStr))
	require.NotNil(t, block)
	require.Equal(t, "PUBLIC KEY", block.Type)

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, publicKey, parsed)
}

func TestJWKRejects(t *testing.T) {
	cases := map[string]jwtx.JWK{
		"rsa":       {Kty: "RSA"},
		"x25519":    {Kty: "OKP", Crv: "X25519"},
		"short key": {Kty: "OKP", Crv: "Ed25519", X: "AAAA"},
		"bad b64":   {Kty: "OKP", Crv: "Ed25519", X: "!!"},
	}

	for name, jwk := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jwk.PEM()
			require.Error(t, err)
			require.Error(t, jwtx.NewKeySet().AddJWK(jwk))
		})
	}
}

func TestJWKSShape(t *testing.T) {
	keyset := jwtx.NewKeySet()
	require.False(t, keyset.IsReady())

	signer := newSigner(t, "key_abc")
	require.NoError(t, keyset.AddSigner(signer))
	require.NoError(t, keyset.AddSigner(signer), "re-adding a kid does not duplicate it")
	require.True(t, keyset.IsReady())

	raw, err := json.Marshal(keyset.PublicJWKS())
	require.NoError(t, err)

	var body struct {
		Keys []map[string]string `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Keys, 1)
	require.Equal(t, "key_abc", body.Keys[0]["kid"])
	require.Equal(t, "sig", body.Keys[0]["use"])
	require.Equal(t, "EdDSA", body.Keys[0]["alg"])
	require.NotContains(t, body.Keys[0], "d", "private part must never be published")

	_, err = keyset.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
