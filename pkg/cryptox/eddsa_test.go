package cryptox_test

import (
	"crypto/ed25519"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	key, err := cryptox.ParseEd25519Key(pemBytes)
	require.NoError(t, err)
	require.Len(t, key, ed25519.PrivateKeySize)
}

func TestParseEd25519KeyRejects(t *testing.T) {
	_, err := cryptox.ParseEd25519Key([]byte("not pem"))
	require.ErrorContains(t, err, "invalid PEM")

	wrongType := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: []byte{1, 2, 3}})
	_, err = cryptox.ParseEd25519Key(wrongType)
	require.ErrorContains(t, err, "expected PRIVATE KEY")

	garbage := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}})
	_, err = cryptox.ParseEd25519Key(garbage)
	require.ErrorContains(t, err, "parse PKCS8")
}
