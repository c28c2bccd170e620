package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/workos/internal/emulator/service"
	"github.com/aussiebroadwan/workos/internal/emulator/store"
	"github.com/aussiebroadwan/workos/pkg/httpx"
	"github.com/aussiebroadwan/workos/pkg/jwtx"
	"github.com/aussiebroadwan/workos/pkg/slogx"

	_ "github.com/aussiebroadwan/workos/api/emulator" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthorizeService  *service.AuthorizeService
	TokenService      *service.TokenService
	ConnectionService *service.ConnectionService
	APIKeyService     *service.APIKeyService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSSO()
	r.registerConnections()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			WorkOS SSO Emulator API
//	@version		0.1.0
//	@description	Local stand-in for the WorkOS Single Sign-On API. Sign in requests are answered with the seeded profile of the selected connection.
//	@description
//	@description				Access tokens are EdDSA (Ed25519) JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/workos
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				API key or access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSSO() {
	// GET /sso/authorize - browser redirect, limited by IP
	authorizeHandler := &AuthorizeHandler{AuthorizeService: r.AuthorizeService}
	r.Mux.Handle("GET /sso/authorize",
		httpx.Chain(authorizeHandler,
			httpx.RateLimitByIP(httpx.APILimit),
		),
	)

	// POST /sso/token - client authentication happens here, strict limit by IP
	tokenHandler := &TokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /sso/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.TokenLimit),
		),
	)

	// GET /sso/profile - access token protected
	profileHandler := &ProfileHandler{TokenService: r.TokenService}
	r.Mux.Handle("GET /sso/profile",
		httpx.Chain(profileHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByBearer(httpx.APILimit),
		),
	)

	// GET /sso/jwks/{client_id} - public
	r.Mux.Handle("GET /sso/jwks/{client_id}",
		httpx.Chain(JWKSHandler(r.TokenService),
			httpx.RateLimitByIP(httpx.APILimit),
		),
	)
}

func (r *Router) registerConnections() {
	h := &ConnectionsHandler{ConnectionService: r.ConnectionService}
	requireKey := httpx.APIKeyMiddleware(r.APIKeyService.Check)

	r.Mux.Handle("GET /connections/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			requireKey,
			httpx.RateLimitByBearer(httpx.APILimit),
		),
	)
	r.Mux.Handle("GET /connections",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			requireKey,
			httpx.RateLimitByBearer(httpx.APILimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.APILimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService.KeyManager.KeySet),
			httpx.RateLimitByIP(httpx.APILimit),
		),
	)
}
