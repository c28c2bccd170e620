package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/idx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
	"github.com/aussiebroadwan/workos/pkg/workos"
	"gopkg.in/yaml.v3"
)

// APIKeyPrefix is prepended to generated API keys.
const APIKeyPrefix = "sk_test_"

var ErrInvalidSeed = errors.New("invalid seed data")

// SeedService populates an empty emulator with connections, profiles and
// its API key.
type SeedService struct {
	Store store.Store
}

// DefaultSeedData is the fixture used when no seed file is configured: one
// active Okta SAML connection of Foo Corp with a single user.
func DefaultSeedData() domain.SeedData {
	return domain.SeedData{
		Connections: []domain.SeedConnection{{
			ID:             "conn_01E4ZCR3C56J083X43JQXF3JK5",
			OrganizationID: "org_01EHWNCE74X7JSDV0X3SZ3KJNY",
			Name:           "Foo Corp",
			ConnectionType: string(workos.ConnectionTypeOktaSAML),
			State:          domain.ConnectionStateActive,
			Domains:        []string{"foo-corp.com"},
			Profiles: []domain.SeedProfile{{
				ID:        "prof_01DMC79VCBZ0NY2099737PSVF1",
				IdpID:     "00u1a0ufowBJlzPlk357",
				Email:     "todd@foo-corp.com",
				FirstName: "Todd",
				LastName:  "Rundgren",
				Groups:    []string{"Engineering", "Admins"},
				RawAttributes: map[string]any{
					"department": "Engineering",
				},
			}},
		}},
	}
}

// LoadSeedFile reads seed data from a YAML file.
func LoadSeedFile(path string) (domain.SeedData, error) {
	var data domain.SeedData
	if err := readYAML(path, &data); err != nil {
		return domain.SeedData{}, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return data, nil
}

func readYAML[T any](path string, out *T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return err
	}
	return nil
}

// SeedConnections inserts the connections and profiles of data when the
// store holds no connection yet. It returns the number of connections
// created, zero when the store was already populated.
func (s *SeedService) SeedConnections(ctx context.Context, data domain.SeedData) (int, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Connections().IsEmpty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		l.Debug("store already has connections, skipping seed")
		return 0, nil
	}

	conns, profiles, err := buildSeed(data, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, c := range conns {
			if err := tx.Connections().CreateConnection(ctx, c); err != nil {
				return fmt.Errorf("create connection %s: %w", c.ID, err)
			}
		}
		for _, p := range profiles {
			if err := tx.Profiles().CreateProfile(ctx, p); err != nil {
				return fmt.Errorf("create profile %s: %w", p.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, c := range conns {
		l.Info("seeded connection",
			slog.String("connection_id", c.ID),
			slog.String("connection_type", c.ConnectionType),
			slog.String("name", c.Name),
		)
	}
	return len(conns), nil
}

// buildSeed validates data and turns it into store records.
func buildSeed(data domain.SeedData, now time.Time) ([]domain.Connection, []domain.Profile, error) {
	var (
		conns    []domain.Connection
		profiles []domain.Profile
	)

	for i, sc := range data.Connections {
		if _, err := workos.ParseConnectionType(sc.ConnectionType); err != nil {
			return nil, nil, fmt.Errorf("%w: connection %d: %v", ErrInvalidSeed, i, err)
		}
		if strings.TrimSpace(sc.Name) == "" {
			return nil, nil, fmt.Errorf("%w: connection %d: name is required", ErrInvalidSeed, i)
		}

		id, err := seedID(sc.ID, idx.PrefixConnection)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: connection %d: id %q", ErrInvalidSeed, i, sc.ID)
		}

		state := sc.State
		if state == "" {
			state = domain.ConnectionStateActive
		}
		if _, err := workos.ParseConnectionState(state); err != nil {
			return nil, nil, fmt.Errorf("%w: connection %d: %v", ErrInvalidSeed, i, err)
		}

		c := domain.Connection{
			ID:             id,
			Name:           sc.Name,
			ConnectionType: sc.ConnectionType,
			State:          state,
			Domains:        make([]domain.ConnectionDomain, 0, len(sc.Domains)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if sc.OrganizationID != "" {
			org := sc.OrganizationID
			c.OrganizationID = &org
		}
		for _, d := range sc.Domains {
			c.Domains = append(c.Domains, domain.ConnectionDomain{
				ID:           idx.New(idx.PrefixDomain).String(),
				ConnectionID: id,
				Domain:       strings.ToLower(strings.TrimSpace(d)),
			})
		}
		conns = append(conns, c)

		for j, sp := range sc.Profiles {
			if strings.TrimSpace(sp.Email) == "" {
				return nil, nil, fmt.Errorf("%w: connection %d profile %d: email is required", ErrInvalidSeed, i, j)
			}

			pid, err := seedID(sp.ID, idx.PrefixProfile)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: connection %d profile %d: id %q", ErrInvalidSeed, i, j, sp.ID)
			}

			idpID := sp.IdpID
			if idpID == "" {
				idpID = idx.New("").String()
			}

			profiles = append(profiles, domain.Profile{
				ID:            pid,
				ConnectionID:  id,
				IdpID:         idpID,
				Email:         sp.Email,
				FirstName:     optional(sp.FirstName),
				LastName:      optional(sp.LastName),
				Groups:        sp.Groups,
				RawAttributes: sp.RawAttributes,
				CreatedAt:     now,
			})
		}
	}

	return conns, profiles, nil
}

func seedID(id, prefix string) (string, error) {
	if id == "" {
		return idx.New(prefix).String(), nil
	}
	parsed, err := idx.Parse(id, prefix)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// EnsureAPIKey stores the configured API key when the store has none. With
// no configured key a fresh one is generated and returned so it can be shown
// to the operator once. An empty result means nothing new was generated.
func (s *SeedService) EnsureAPIKey(ctx context.Context, configured string) (string, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.APIKeys().IsEmpty(ctx)
	if err != nil {
		return "", err
	}
	if !empty && configured == "" {
		return "", nil
	}

	if configured != "" && !empty {
		// Skip keys that are already stored.
		keys, err := s.Store.APIKeys().ListAPIKeys(ctx)
		if err != nil {
			return "", err
		}
		for _, k := range keys {
			if cryptox.VerifySecret(configured, k.KeyHash) == nil {
				return "", nil
			}
		}
	}

	key := configured
	if key == "" {
		if key, err = cryptox.GeneratePrefixedToken(APIKeyPrefix, cryptox.TokenSize256); err != nil {
			return "", fmt.Errorf("generate api key: %w", err)
		}
	}

	hash, err := cryptox.HashSecret(key)
	if err != nil {
		return "", fmt.Errorf("hash api key: %w", err)
	}

	err = s.Store.APIKeys().CreateAPIKey(ctx, domain.APIKey{
		ID:        idx.New("key").String(),
		Name:      "default",
		KeyHash:   hash,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("store api key: %w", err)
	}

	if configured != "" {
		l.Info("stored configured api key")
		return "", nil
	}
	return key, nil
}
