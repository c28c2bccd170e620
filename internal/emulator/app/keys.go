package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
)

// InitSigningKeys creates the KeyManager signing access tokens.
//
// Keys are sealed with a key derived from cfg.MasterKey and stored in the
// database, so tokens survive restarts as long as the master key does not
// change. Without a master key the sealing key is random: stored keys from
// an earlier run cannot be opened and startup fails until the database is
// removed or the previous master key is set again.
func InitSigningKeys(ctx context.Context, cfg Config, db store.Store, logger *slog.Logger) (*jwtx.KeyManager, error) {
	if cfg.MasterKey == "" {
		logger.Warn("EMULATOR_MASTER_KEY is not set, signing keys will not be readable after a restart")
	}

	sealer, err := cryptox.NewSealer([]byte(cfg.MasterKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sealer: %w", err)
	}

	keyManager, err := jwtx.NewKeyManager(ctx, jwtx.KeyManagerOptions{
		Issuer:   cfg.Issuer,
		Audience: []string{cfg.ClientID},
		NumKeys:  cfg.NumSigningKeys,
		Store:    store.NewKeyStoreAdapter(db),
		Sealer:   sealer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key manager: %w", err)
	}

	logger.Info("signing keys loaded",
		"algorithm", jwtx.AlgorithmEdDSA,
		"num_keys", keyManager.NumSigners(),
		"issuer", cfg.Issuer,
	)
	return keyManager, nil
}
