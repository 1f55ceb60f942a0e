package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ShadeShop/internal/auth"
	"ShadeShop/internal/cart"
	"ShadeShop/internal/catalog"
	"ShadeShop/internal/user"
	"ShadeShop/pkg/kit"
)

// Deps is the wired application state.
type Deps struct {
	Log      *zap.Logger
	Catalog  catalog.Store
	Users    user.Registry
	Throttle *auth.Throttle
	Tokens   *auth.TokenRegistry
	Carts    *cart.Manager
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// LoginLimitPerMin caps POST /login per client IP; 0 disables the limit.
	LoginLimitPerMin int
}

const limitWindowSeconds = 60

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)
	setupRoutes(r, deps, httpDeps)

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.CORS)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func setupRoutes(r *chi.Mux, deps Deps, httpDeps HTTPDeps) {
	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps))

	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: deps.Log}
	r.Mount("/", catalogSrv.Routes())

	authSrv := &auth.Server{
		Log:      deps.Log,
		Users:    deps.Users,
		Throttle: deps.Throttle,
		Tokens:   deps.Tokens,
	}
	login := chi.Chain()
	if httpDeps.LoginLimitPerMin > 0 {
		limiter := kit.NewIPRateLimiter(httpDeps.LoginLimitPerMin, limitWindowSeconds)
		login = chi.Chain(limiter.Middleware)
	}
	r.With(login...).Post("/login", authSrv.HandleLogin)

	cartSrv := &cart.Server{Log: deps.Log, Carts: deps.Carts}
	r.Route("/me/cart", func(pr chi.Router) {
		pr.Use(auth.RequireToken(deps.Tokens, deps.Users))
		pr.Mount("/", cartSrv.Routes())
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := deps.Catalog.Ping(ctx); err != nil {
			kit.WriteError(w, http.StatusServiceUnavailable, "catalog not ready", "")
			return
		}
		if err := deps.Users.Ping(ctx); err != nil {
			kit.WriteError(w, http.StatusServiceUnavailable, "users not ready", "")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
