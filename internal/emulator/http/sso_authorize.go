package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/pkg/httpx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// AuthorizeHandler serves GET /sso/authorize. There is no login page: the
// seeded user of the selected connection is signed in immediately.
type AuthorizeHandler struct {
	AuthorizeService *service.AuthorizeService
}

// ServeHTTP godoc
//
//	@Summary		Start an SSO sign in
//	@Description	Signs in the seeded profile of the selected connection and redirects to redirect_uri with a one-time code.
//	@Description	Errors found after the redirect URI is trusted are sent to it as error and error_description query parameters.
//	@Tags			SSO
//	@Param			client_id		query		string			true	"Client identifier"
//	@Param			redirect_uri	query		string			true	"Callback URL of the application"
//	@Param			response_type	query		string			true	"Must be code"	Enums(code)
//	@Param			connection		query		string			false	"Connection identifier"
//	@Param			organization	query		string			false	"Organization identifier"
//	@Param			provider		query		string			false	"Connection type, e.g. GoogleOAuth"
//	@Param			state			query		string			false	"Opaque value returned on the redirect"
//	@Param			login_hint		query		string			false	"Email of the profile to sign in"
//	@Param			domain_hint		query		string			false	"Accepted and ignored"
//	@Success		302
//	@Failure		400				{object}	httpx.APIError	"code, message"
//	@Router			/sso/authorize [get].
func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	req := service.AuthorizeRequest{
		ResponseType: q.Get("response_type"),
		ClientID:     q.Get("client_id"),
		RedirectURI:  q.Get("redirect_uri"),
		State:        q.Get("state"),
		Connection:   q.Get("connection"),
		Organization: q.Get("organization"),
		Provider:     q.Get("provider"),
		LoginHint:    q.Get("login_hint"),
	}

	res, err := h.AuthorizeService.IssueAuthorizationCode(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClient):
			httpx.WriteAPIError(w, http.StatusBadRequest, "invalid_client", "Invalid client ID.")
		case errors.Is(err, service.ErrInvalidRedirectURI):
			httpx.WriteAPIError(w, http.StatusBadRequest, "invalid_redirect_uri", err.Error())
		case errors.Is(err, service.ErrInvalidRequest):
			redirectError(w, r, req, "invalid_request", err.Error())
		case errors.Is(err, service.ErrConnectionNotFound), errors.Is(err, service.ErrConnectionInactive):
			redirectError(w, r, req, "connection_invalid", err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			redirectError(w, r, req, "access_denied", "The connection has no user to sign in.")
		default:
			log.Error("authorize failed", "err", err)
			redirectError(w, r, req, "server_error", "An unexpected error occurred.")
		}
		return
	}

	target, err := res.RedirectURL()
	if err != nil {
		log.Error("build redirect failed", "err", err)
		httpx.WriteAPIError(w, http.StatusInternalServerError, "server_error", "An unexpected error occurred.")
		return
	}

	httpx.NoCache(w)
	http.Redirect(w, r, target, http.StatusFound)
}

// redirectError sends an OAuth error back to the already validated
// redirect URI.
func redirectError(w http.ResponseWriter, r *http.Request, req service.AuthorizeRequest, code, description string) {
	u, err := url.Parse(req.RedirectURI)
	if err != nil {
		httpx.WriteAPIError(w, http.StatusBadRequest, code, description)
		return
	}

	q := u.Query()
	q.Set("error", code)
	q.Set("error_description", description)
	if req.State != "" {
		q.Set("state", req.State)
	}
	u.RawQuery = q.Encode()

	httpx.NoCache(w)
	http.Redirect(w, r, u.String(), http.StatusFound)
}
