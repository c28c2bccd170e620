package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/domain"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/cryptox"
	"github.com/aussiebroadwan/workos/pkg/idx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// DefaultCodeTTL is used when AuthorizeService.CodeTTL is unset.
const DefaultCodeTTL = 10 * time.Minute

// AuthorizeService stands in for the identity provider: it picks the
// connection a sign in request targets, signs the seeded user in and issues
// a one-time authorization code.
type AuthorizeService struct {
	Store    store.Store
	ClientID string
	CodeTTL  time.Duration
}

// AuthorizeRequest holds the query of an authorization URL. Exactly one of
// Connection, Organization and Provider selects the connection, checked in
// that order.
type AuthorizeRequest struct {
	ResponseType string
	ClientID     string
	RedirectURI  string
	State        string

	Connection   string
	Organization string
	Provider     string

	LoginHint string
}

// AuthorizeCodeResponse contains what the redirect back to the application
// carries.
type AuthorizeCodeResponse struct {
	Code        string
	RedirectURI string
	State       string
}

// RedirectURL returns the redirect URI with code and state appended to its
// query.
func (r *AuthorizeCodeResponse) RedirectURL() (string, error) {
	u, err := url.Parse(r.RedirectURI)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("code", r.Code)
	if r.State != "" {
		q.Set("state", r.State)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// IssueAuthorizationCode validates req, resolves its connection and profile
// and stores the fingerprint of a new authorization code.
//
// Returns:
//   - ErrInvalidClient when client_id is not the emulator's client
//   - ErrInvalidRedirectURI when redirect_uri is missing or not absolute
//   - ErrInvalidRequest when response_type or the connection selector is wrong
//   - ErrConnectionNotFound when no connection matches the selector
//   - ErrConnectionInactive when the selected connection is not Active
//   - ErrProfileNotFound when the connection has no user to sign in
func (s *AuthorizeService) IssueAuthorizationCode(ctx context.Context, req AuthorizeRequest) (*AuthorizeCodeResponse, error) {
	log := slogx.FromContext(ctx)

	// Client and redirect URI come first: until both are trusted, errors
	// cannot be sent back to the application.
	if strings.TrimSpace(req.ClientID) == "" || req.ClientID != s.ClientID {
		return nil, ErrInvalidClient
	}
	if err := validateRedirectURI(req.RedirectURI); err != nil {
		return nil, err
	}

	if req.ResponseType != "code" {
		return nil, fmt.Errorf("%w: response_type must be code", ErrInvalidRequest)
	}

	conn, err := s.resolveConnection(ctx, req)
	if err != nil {
		return nil, err
	}
	if !conn.IsActive() {
		return nil, ErrConnectionInactive
	}

	profile, err := s.resolveProfile(ctx, conn.ID, req.LoginHint)
	if err != nil {
		return nil, err
	}

	code, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	ttl := s.CodeTTL
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}

	now := time.Now().UTC()
	err = s.Store.AuthorizationCodes().CreateAuthorizationCode(ctx, domain.AuthorizationCode{
		ID:          idx.New("").String(),
		CodeHash:    cryptox.FingerprintToken(code),
		ClientID:    req.ClientID,
		ProfileID:   profile.ID,
		RedirectURI: req.RedirectURI,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	log.Info("issued authorization code",
		slog.String("connection_id", conn.ID),
		slog.String("profile_id", profile.ID),
	)

	return &AuthorizeCodeResponse{
		Code:        code,
		RedirectURI: req.RedirectURI,
		State:       req.State,
	}, nil
}

func (s *AuthorizeService) resolveConnection(ctx context.Context, req AuthorizeRequest) (domain.Connection, error) {
	var (
		conn domain.Connection
		err  error
	)

	switch {
	case req.Connection != "":
		conn, err = s.Store.Connections().GetConnectionByID(ctx, req.Connection)
	case req.Organization != "":
		conn, err = s.Store.Connections().GetActiveConnectionByOrganization(ctx, req.Organization)
	case req.Provider != "":
		conn, err = s.Store.Connections().GetActiveConnectionByType(ctx, req.Provider)
	default:
		return domain.Connection{}, fmt.Errorf("%w: one of connection, organization or provider is required", ErrInvalidRequest)
	}

	if errors.Is(err, store.ErrNotFound) {
		return domain.Connection{}, ErrConnectionNotFound
	}
	return conn, err
}

// resolveProfile picks the user matching the login hint, falling back to the
// first user of the connection.
func (s *AuthorizeService) resolveProfile(ctx context.Context, connectionID, loginHint string) (domain.ProfileView, error) {
	if hint := strings.TrimSpace(loginHint); hint != "" {
		p, err := s.Store.Profiles().GetProfileByEmail(ctx, connectionID, hint)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.ProfileView{}, err
		}
	}

	p, err := s.Store.Profiles().GetProfileByConnection(ctx, connectionID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProfileView{}, ErrProfileNotFound
	}
	return p, err
}

func validateRedirectURI(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: redirect_uri is required", ErrInvalidRedirectURI)
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: redirect_uri must be an absolute http(s) URL", ErrInvalidRedirectURI)
	}
	if u.Fragment != "" {
		return fmt.Errorf("%w: redirect_uri must not contain a fragment", ErrInvalidRedirectURI)
	}
	return nil
}
