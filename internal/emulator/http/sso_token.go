package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/pkg/httpx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
	"github.com/aussiebroadwan/workos/pkg/workos"
)

// maxTokenBody bounds the size of a token request body.
const maxTokenBody = 64 << 10

// TokenHandler serves POST /sso/token.
// Accepts a JSON body, or application/x-www-form-urlencoded as the hosted API
// does.
type TokenHandler struct {
	TokenService *service.TokenService
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
	GrantType    string `json:"grant_type"`
}

// ServeHTTP godoc
//
//	@Summary		Exchange an authorization code
//	@Description	Redeems a one-time authorization code for the signed in profile and an access token.
//	@Description	The API key is the client_secret.
//	@Tags			SSO
//	@Accept			json
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		tokenRequest			true	"client_id, client_secret, code, grant_type"
//	@Success		200		{object}	workos.ProfileAndToken	"access_token, profile"
//	@Failure		400		{object}	httpx.OAuthError		"error, error_description"
//	@Failure		401		{object}	httpx.OAuthError		"error, error_description"
//	@Failure		500		{object}	httpx.OAuthError		"error, error_description"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/sso/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req, err := decodeTokenRequest(w, r)
	if err != nil {
		httpx.WriteOAuthError(w, http.StatusBadRequest, "invalid_request", "The request body could not be parsed.")
		return
	}

	res, err := h.TokenService.ExchangeCode(ctx, req.ClientID, req.ClientSecret, req.Code, req.GrantType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrantType):
			httpx.WriteOAuthError(w, http.StatusBadRequest, "unsupported_grant_type",
				"The grant type is not supported. Use authorization_code.")
		case errors.Is(err, service.ErrInvalidRequest):
			httpx.WriteOAuthError(w, http.StatusBadRequest, "invalid_request", "client_id and code are required.")
		case errors.Is(err, service.ErrInvalidClient):
			httpx.WriteOAuthError(w, http.StatusUnauthorized, "invalid_client", "Invalid client secret.")
		case errors.Is(err, service.ErrInvalidGrant):
			httpx.WriteOAuthError(w, http.StatusBadRequest, "invalid_grant",
				"The code '"+req.Code+"' has expired or is invalid.")
		default:
			log.Error("token exchange failed", "err", err)
			httpx.WriteOAuthError(w, http.StatusInternalServerError, "server_error", "An unexpected error occurred.")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, workos.ProfileAndToken{
		AccessToken: res.AccessToken,
		Profile:     toProfileResponse(res.Profile),
	})
}

func decodeTokenRequest(w http.ResponseWriter, r *http.Request) (tokenRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTokenBody)

	var req tokenRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return tokenRequest{}, err
		}
		req.ClientID = r.PostForm.Get("client_id")
		req.ClientSecret = r.PostForm.Get("client_secret")
		req.Code = r.PostForm.Get("code")
		req.GrantType = r.PostForm.Get("grant_type")
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return tokenRequest{}, err
	}
	return req, nil
}
