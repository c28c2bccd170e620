package jwtx

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aussiebroadwan/workos/pkg/cryptox"
)

// SigningKeyRecord is a signing key as persisted by a KeyStore. The private
// key is sealed, never stored in the clear.
type SigningKeyRecord struct {
	Kid                 string
	Algorithm           string
	PrivateKeyEncrypted []byte
	CreatedAt           time.Time
}

// KeyStore is the minimal persistence needed by the KeyManager. It is
// defined here so jwtx does not depend on any store package.
type KeyStore interface {
	ListSigningKeys(ctx context.Context) ([]SigningKeyRecord, error)
	CreateSigningKey(ctx context.Context, key SigningKeyRecord) error
}

// KeyManagerOptions configures a KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) validated in tokens. Required.
	Issuer string

	// Audience values validated in tokens. Empty means no audience check.
	Audience []string

	// NumKeys is the target number of signing keys. Defaults to 2, max 10.
	NumKeys int

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Store persists keys across restarts. Nil keeps keys in memory only.
	Store KeyStore

	// Sealer encrypts private keys before they reach Store. Required with
	// Store.
	Sealer *cryptox.Sealer
}

// KeyManager owns the signing keys of an instance, the KeySet that
// publishes them and the Verifier that checks tokens against them.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// NewKeyManager loads the stored keys, if any, and generates new ones until
// NumKeys is reached. New keys are written to the store when one is set.
func NewKeyManager(ctx context.Context, opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}
	if opts.Store != nil && opts.Sealer == nil {
		return nil, fmt.Errorf("jwtx: Sealer is required with a Store")
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = 2
	}
	numKeys = min(numKeys, 10)

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)

	if opts.Store != nil {
		records, err := opts.Store.ListSigningKeys(ctx)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to load keys: %w", err)
		}

		for _, rec := range records {
			if rec.Algorithm != AlgorithmEdDSA {
				return nil, fmt.Errorf("jwtx: key %s has unsupported algorithm %q", rec.Kid, rec.Algorithm)
			}

			pemData, err := opts.Sealer.Open(rec.PrivateKeyEncrypted)
			if err != nil {
				return nil, fmt.Errorf("jwtx: failed to decrypt key %s: %w", rec.Kid, err)
			}

			signer, err := NewSignerEdDSA(rec.Kid, pemData)
			if err != nil {
				return nil, fmt.Errorf("jwtx: failed to create signer for key %s: %w", rec.Kid, err)
			}

			if err := keyset.AddSigner(signer); err != nil {
				return nil, fmt.Errorf("jwtx: failed to add key %s to keyset: %w", rec.Kid, err)
			}
			signers = append(signers, signer)
		}
	}

	for len(signers) < numKeys {
		kid, err := generateRandomKeyID()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
		}

		pemData, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key: %w", err)
		}

		signer, err := NewSignerEdDSA(kid, pemData)
		if err != nil {
			return nil, err
		}

		if opts.Store != nil {
			sealed, err := opts.Sealer.Seal(pemData)
			if err != nil {
				return nil, fmt.Errorf("jwtx: failed to encrypt new key: %w", err)
			}

			err = opts.Store.CreateSigningKey(ctx, SigningKeyRecord{
				Kid:                 kid,
				Algorithm:           AlgorithmEdDSA,
				PrivateKeyEncrypted: sealed,
				CreatedAt:           time.Now().UTC(),
			})
			if err != nil {
				return nil, fmt.Errorf("jwtx: failed to store new key: %w", err)
			}
		}

		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add new key to keyset: %w", err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience, opts.Leeway),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// GetSigner returns a randomly selected signer from the available keys.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// Sign signs claims with one of the active keys.
func (km *KeyManager) Sign(claims Claims) (string, error) {
	signer := km.GetSigner()
	if signer == nil {
		return "", fmt.Errorf("jwtx: no signing keys")
	}
	return signer.Sign(claims)
}

// generateRandomKeyID creates a random key identifier using cryptographic
// entropy. Format: "key_{random-token}".
func generateRandomKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key ID: %w", err)
	}
	return "key_" + token, nil
}
