package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// APIKeyService checks presented API keys against the stored Argon2id
// hashes. Accepted keys are remembered by fingerprint so the hash is only
// computed once per key and process.
type APIKeyService struct {
	Store store.Store

	mu       sync.RWMutex
	accepted map[string]string // fingerprint -> key id
}

// Verify reports ErrInvalidAPIKey unless key matches a stored API key.
func (s *APIKeyService) Verify(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidAPIKey
	}

	fp := cryptox.FingerprintToken(key)

	s.mu.RLock()
	id, ok := s.accepted[fp]
	s.mu.RUnlock()
	if ok {
		s.touch(ctx, id)
		return nil
	}

	keys, err := s.Store.APIKeys().ListAPIKeys(ctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		if cryptox.VerifySecret(key, k.KeyHash) != nil {
			continue
		}

		s.mu.Lock()
		if s.accepted == nil {
			s.accepted = make(map[string]string)
		}
		s.accepted[fp] = k.ID
		s.mu.Unlock()

		s.touch(ctx, k.ID)
		return nil
	}

	return ErrInvalidAPIKey
}

// Check adapts Verify to httpx.APIKeyMiddleware.
func (s *APIKeyService) Check(ctx context.Context, key string) bool {
	err := s.Verify(ctx, key)
	if err != nil && !errors.Is(err, ErrInvalidAPIKey) {
		slogx.FromContext(ctx).Error("api key lookup failed", slog.Any("error", err))
	}
	return err == nil
}

func (s *APIKeyService) touch(ctx context.Context, id string) {
	if err := s.Store.APIKeys().TouchAPIKey(ctx, id, time.Now().UTC()); err != nil {
		slogx.FromContext(ctx).Warn("failed to record api key use", slog.String("key_id", id), slog.Any("error", err))
	}
}
