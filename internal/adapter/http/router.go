package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dtella/chartledger/internal/adapter/http/handler"
	"github.com/dtella/chartledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler *handler.AccountHandler
	EntryHandler   *handler.EntryHandler
	BalanceHandler *handler.BalanceHandler
	LedgerHandler  *handler.LedgerHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/code/{type}/{code}", cfg.AccountHandler.GetByCode)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/balance", cfg.BalanceHandler.Balance)
			r.Get("/{id}/balance/rollup", cfg.BalanceHandler.RollupBalance)
			r.Get("/{id}/balance/credits", cfg.BalanceHandler.Credits)
			r.Get("/{id}/balance/debits", cfg.BalanceHandler.Debits)
			r.Get("/{id}/children", cfg.BalanceHandler.Children)
			r.Get("/{id}/entries", cfg.EntryHandler.ListByAccount)
		})

		// Entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/{id}", cfg.EntryHandler.Get)
		})

		// Ledger-wide balances
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/balance/{type}", cfg.LedgerHandler.TypeBalance)
			r.Get("/trial-balance", cfg.LedgerHandler.TrialBalance)
		})
	})

	return r
}
