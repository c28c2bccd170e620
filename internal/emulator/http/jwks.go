package http

import (
	"net/http"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/pkg/httpx"
)

// JWKSHandler exposes the JSON Web Key Set verifying a client's access
// tokens.
//
//	@Summary		Get JWKS
//	@Description	Returns the Ed25519 public keys used to verify access tokens issued to the client.
//	@Tags			SSO
//	@Produce		json
//	@Param			client_id	path		string			true	"Client identifier"
//	@Success		200			{object}	jwtx.JWKS		"The JSON Web Key Set"
//	@Failure		404			{object}	httpx.APIError	"code, message"
//	@Router			/sso/jwks/{client_id} [get].
func JWKSHandler(tokens *service.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwks, err := tokens.JWKS(r.PathValue("client_id"))
		if err != nil {
			httpx.WriteAPIError(w, http.StatusNotFound, "entity_not_found", "Could not find a client with that ID.")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, jwks)
	}
}
