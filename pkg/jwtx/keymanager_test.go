package jwtx_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type memoryKeyStore struct {
	mu   sync.Mutex
	keys []jwtx.SigningKeyRecord
}

func (m *memoryKeyStore) ListSigningKeys(context.Context) ([]jwtx.SigningKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]jwtx.SigningKeyRecord(nil), m.keys...), nil
}

func (m *memoryKeyStore) CreateSigningKey(_ context.Context, k jwtx.SigningKeyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, k)
	return nil
}

func TestEphemeralKeyManager(t *testing.T) {
	km, err := jwtx.NewKeyManager(context.Background(), jwtx.KeyManagerOptions{
		Issuer:   exampleIssuer,
		Audience: []string{"client_123"},
	})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 2, km.NumSigners())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 2)

	for range 10 {
		token, err := km.Sign(accessClaims(time.Minute))
		require.NoError(t, err)

		claims, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "prof_01E4ZCR3C56J083X43JQXF3JK5", claims.Subject)
	}
}

func TestKeyManagerOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("issuer required", func(t *testing.T) {
		_, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{})
		require.ErrorContains(t, err, "Issuer is required")
	})

	t.Run("sealer required with store", func(t *testing.T) {
		_, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, Store: &memoryKeyStore{}})
		require.ErrorContains(t, err, "Sealer is required")
	})

	t.Run("key count is capped", func(t *testing.T) {
		km, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 50})
		require.NoError(t, err)
		require.Equal(t, 10, km.NumSigners())
	})
}

func TestPersistentKeyManagerSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := &memoryKeyStore{}

	sealer, err := cryptox.NewSealer([]byte("master"))
	require.NoError(t, err)

	opts := jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 2, Store: store, Sealer: sealer}

	first, err := jwtx.NewKeyManager(ctx, opts)
	require.NoError(t, err)
	require.Len(t, store.keys, 2)
	for _, k := range store.keys {
		require.Equal(t, jwtx.AlgorithmEdDSA, k.Algorithm)
		require.NotContains(t, string(k.PrivateKeyEncrypted), "PRIVATE KEY")
	}

	token, err := first.Sign(accessClaims(time.Minute))
	require.NoError(t, err)

	second, err := jwtx.NewKeyManager(ctx, opts)
	require.NoError(t, err)
	require.Len(t, store.keys, 2, "no new keys once the target is met")

	_, err = second.Verifier.Verify(token)
	require.NoError(t, err)

	t.Run("wrong master key", func(t *testing.T) {
		other, err := cryptox.NewSealer([]byte("different"))
		require.NoError(t, err)

		_, err = jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{Issuer: exampleIssuer, Store: store, Sealer: other})
		require.ErrorContains(t, err, "failed to decrypt key")
	})
}
