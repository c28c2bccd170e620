package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// GrantTypeAuthorizationCode is the only grant the token endpoint accepts.
const GrantTypeAuthorizationCode = "authorization_code"

type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	APIKeys    *APIKeyService
	ClientID   string
	Issuer     string
	AccessTTL  time.Duration
}

// ProfileAndToken is the result of a successful code exchange.
type ProfileAndToken struct {
	AccessToken string
	Profile     domain.ProfileView
}

// ExchangeCode redeems an authorization code for the profile it was issued
// for and a signed access token. The client authenticates with an API key as
// client_secret. A code is redeemed at most once.
func (s *TokenService) ExchangeCode(ctx context.Context, clientID, clientSecret, code, grantType string) (*ProfileAndToken, error) {
	l := slogx.FromContext(ctx)

	if grantType != GrantTypeAuthorizationCode {
		return nil, ErrUnsupportedGrantType
	}

	clientID = strings.TrimSpace(clientID)
	code = strings.TrimSpace(code)
	if clientID == "" || code == "" {
		return nil, ErrInvalidRequest
	}

	if clientID != s.ClientID {
		l.Info("token exchange for unknown client", slog.String("client_id", clientID))
		return nil, ErrInvalidClient
	}
	if err := s.APIKeys.Verify(ctx, clientSecret); err != nil {
		if errors.Is(err, ErrInvalidAPIKey) {
			l.Info("token exchange client authentication failed", slog.String("client_id", clientID))
			return nil, ErrInvalidClient
		}
		return nil, err
	}

	now := time.Now().UTC()
	var profile domain.ProfileView

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		ac, err := tx.AuthorizationCodes().GetAuthorizationCodeByHash(ctx, cryptox.FingerprintToken(code))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidGrant
			}
			return err
		}

		if ac.ClientID != clientID || !ac.IsRedeemable(now) {
			return ErrInvalidGrant
		}

		if err := tx.AuthorizationCodes().MarkAuthorizationCodeUsed(ctx, ac.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidGrant
			}
			return err
		}

		profile, err = tx.Profiles().GetProfileByID(ctx, ac.ProfileID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidGrant
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidGrant) {
			l.Info("authorization code rejected", slog.String("client_id", clientID))
		}
		return nil, err
	}

	params := jwtx.AccessClaimsParams{
		Subject:      profile.ID,
		ClientID:     clientID,
		ConnectionID: profile.ConnectionID,
		Issuer:       s.Issuer,
		TTL:          s.AccessTTL,
		Now:          now,
	}
	if profile.OrganizationID != nil {
		params.OrganizationID = *profile.OrganizationID
	}

	token, err := s.KeyManager.Sign(jwtx.NewAccessClaims(params))
	if err != nil {
		return nil, err
	}

	l.Info("exchanged authorization code", slog.String("profile_id", profile.ID))
	return &ProfileAndToken{AccessToken: token, Profile: profile}, nil
}

// GetProfile returns the profile an access token was issued for. The token
// has already been verified; profileID is its subject.
func (s *TokenService) GetProfile(ctx context.Context, profileID string) (domain.ProfileView, error) {
	if profileID == "" {
		return domain.ProfileView{}, ErrProfileNotFound
	}

	p, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProfileView{}, ErrProfileNotFound
		}
		return domain.ProfileView{}, err
	}
	return p, nil
}

// JWKS returns the public keys verifying access tokens of clientID.
func (s *TokenService) JWKS(clientID string) (jwtx.JWKS, error) {
	if clientID != s.ClientID {
		return jwtx.JWKS{}, ErrInvalidClient
	}
	return s.KeyManager.KeySet.PublicJWKS(), nil
}
