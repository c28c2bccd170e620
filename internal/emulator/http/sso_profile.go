package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/pkg/httpx"
	"github.com/aussiebroadwan/workos/pkg/slogx"
)

// ProfileHandler serves GET /sso/profile for a verified access token.
type ProfileHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Get the profile of an access token
//	@Tags			SSO
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	workos.Profile	"The signed in profile"
//	@Failure		401	{object}	httpx.APIError	"code, message"
//	@Failure		404	{object}	httpx.APIError	"code, message"
//	@Router			/sso/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.TokenService.GetProfile(ctx, httpx.SubjectFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			httpx.WriteAPIError(w, http.StatusNotFound, "entity_not_found", "Could not find the profile of this access token.")
			return
		}
		slogx.FromContext(ctx).Error("get profile failed", "err", err)
		httpx.WriteAPIError(w, http.StatusInternalServerError, "server_error", "An unexpected error occurred.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}
