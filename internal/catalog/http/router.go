package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/jwtx"
	"github.com/scentworks/parfum/pkg/slogx"

	_ "github.com/scentworks/parfum/api/catalog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	UserService    *service.UserService
	TokenService   *service.TokenService
	PerfumeService *service.PerfumeService
	NotesService   *service.NotesService
}

func NewRouter(
	verifier *jwtx.Verifier,
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

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCatalog()
	r.registerNotes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Parfum Catalog API
//	@version		0.1.0
//	@description	Perfume catalog and preference service: register, log in, get note-based
//	@description	recommendations, and fetch delegated notes from the external notes service.
//
//	@contact.name	ScentWorks Team
//	@contact.url	https://github.com/scentworks/parfum
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /token - strict rate limit by IP + username form field to slow
	// brute force against a single account
	tokenHandler := &TokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerCatalog() {
	h := &PerfumesHandler{PerfumeService: r.PerfumeService}
	recommendHandler := &RecommendHandler{PerfumeService: r.PerfumeService}

	identity := IdentityMiddleware(r.store.Users())

	// Read endpoints: any authenticated user, lenient rate limit
	securedRecommend := httpx.Chain(recommendHandler,
		httpx.AuthnMiddleware(r.verifier),
		identity,
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedSearch := httpx.Chain(http.HandlerFunc(h.HandleSearchNotes),
		httpx.AuthnMiddleware(r.verifier),
		identity,
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// Mutating endpoints: admin role required, moderate rate limit
	securedAdd := httpx.Chain(http.HandlerFunc(h.HandleAdd),
		httpx.AuthnMiddleware(r.verifier),
		identity,
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedAppend := httpx.Chain(http.HandlerFunc(h.HandleAppendNotes),
		httpx.AuthnMiddleware(r.verifier),
		identity,
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		identity,
		httpx.RequireRole(domain.RoleAdmin),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/recommendations", securedRecommend)
	r.Mux.Handle("GET /v1/perfumes/{name}/notes", securedSearch)
	r.Mux.Handle("POST /v1/perfumes", securedAdd)
	r.Mux.Handle("PATCH /v1/perfumes/{name}/notes", securedAppend)
	r.Mux.Handle("DELETE /v1/perfumes/{name}", securedDelete)
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NotesService: r.NotesService}

	// Proxied external fetch - moderate rate limit by user
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		IdentityMiddleware(r.store.Users()),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/notes", secured)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems poll)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
