package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mgoulart/billtrack/internal/adapter/http/handler"
	"github.com/mgoulart/billtrack/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BillHandler     *handler.BillHandler
	BudgetHandler   *handler.BudgetHandler
	ReminderHandler *handler.ReminderHandler
	HealthHandler   *handler.HealthHandler
	Logging         *middleware.LoggingMiddleware
	RateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1, scoped to the owner named in the request header
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Owner)
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Bills
		r.Route("/bills", func(r chi.Router) {
			r.Post("/", cfg.BillHandler.Create)
			r.Get("/", cfg.BillHandler.List)
			r.Get("/{id}", cfg.BillHandler.Get)
			r.Put("/{id}", cfg.BillHandler.Update)
			r.Patch("/{id}/paid", cfg.BillHandler.SetPaid)
			r.Delete("/{id}", cfg.BillHandler.Delete)
		})

		// Budget ledger
		r.Route("/budget", func(r chi.Router) {
			r.Post("/entries", cfg.BudgetHandler.AddEntry)
			r.Get("/entries", cfg.BudgetHandler.ListEntries)
			r.Delete("/entries/{id}", cfg.BudgetHandler.DeleteEntry)
			r.Get("/summary", cfg.BudgetHandler.GetSummary)
		})

		// Reminders
		r.Get("/reminders/due", cfg.ReminderHandler.DueBills)
	})

	return r
}
