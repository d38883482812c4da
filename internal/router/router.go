package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GregMSThompson/budget-planner/internal/handlers"
	"github.com/GregMSThompson/budget-planner/internal/middleware"
)

type Options struct {
	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(deps *handlers.Deps, opts Options) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(lm.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}))
	if opts.RateLimitRPS > 0 {
		rl := middleware.NewRateLimitMiddleware(opts.RateLimitRPS, opts.RateLimitBurst, deps.ResponseHandler)
		r.Use(rl.RateLimit)
	}

	rh := handlers.NewRootHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	rch := handlers.NewRecurringHandlers(deps)
	ah := handlers.NewAnalyticsHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", rh.Root)
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/recurring", rch.RecurringRoutes())
		r.Mount("/analytics", ah.AnalyticsRoutes())
	})
	return r
}
