package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/service"
	"github.com/farrierlabs/accountd/internal/directory/store"
	"github.com/farrierlabs/accountd/pkg/httpx"
	"github.com/farrierlabs/accountd/pkg/slogx"

	_ "github.com/farrierlabs/accountd/api/directory" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store     store.Store
	Directory *service.DirectoryService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Every request gets a contextual logger and the caller identity (when
	// supplied) before routing.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.IdentityMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Account Directory Service API
//	@version		0.1.0
//	@description	User-account management service: signup, login, listing/search, statistics and admin-gated update/delete.
//	@description
//	@description				Caller identity is supplied via the X-User-ID and X-User-Role headers and is trusted as
//	@description				already authenticated. Admin-gated endpoints require X-User-Role: admin.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Directory: r.Directory}

	// POST /signup, /login - strict rate limit by IP (abuse prevention on
	// the unauthenticated surface)
	r.Mux.Handle("POST /api/users/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Reads require a caller identity (informational, not an authorization
	// gate) - lenient rate limit by caller
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RequireIdentity(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/users/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			httpx.RequireIdentity(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RequireIdentity(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Admin-gated mutations; the service enforces the admin check so the 403
	// precedence over 404 lives in one place - moderate rate limit by caller
	r.Mux.Handle("PUT /api/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RequireIdentity(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RequireIdentity(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may
	// poll frequently)
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
