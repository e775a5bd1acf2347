package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/finacct/internal/adapter/http/handler"
	"github.com/iho/finacct/internal/adapter/http/middleware"
	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/infrastructure/auth"
	"github.com/iho/finacct/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	FinAccountHandler *handler.FinAccountHandler
	AllocationHandler *handler.AllocationHandler
	RateHandler       *handler.RateHandler
	GlClassHandler    *handler.GlClassHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	JWTManager        *auth.JWTManager
	RateLimiter       *middleware.RateLimiter
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
			r.Use(middleware.RequireRole(domain.RoleOperator))
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Financial accounts
		r.Route("/fin-accounts/{id}", func(r chi.Router) {
			r.Post("/deposit-withdraw", cfg.FinAccountHandler.DepositOrWithdraw)
			r.Post("/transactions", cfg.FinAccountHandler.CreateTrans)
		})
		r.Get("/fin-account-trans/{id}", cfg.FinAccountHandler.GetTrans)

		// Invoice allocation
		r.Get("/payments/{id}/unapplied-invoices", cfg.AllocationHandler.ListUnappliedInvoices)
		r.Post("/invoices/{id}/reconcile", cfg.AllocationHandler.Reconcile)

		// Settlement rates
		r.Route("/rates", func(r chi.Router) {
			r.Post("/purchase-invoice", cfg.RateHandler.PurchaseInvoiceRate)
			r.Post("/outgoing-payment", cfg.RateHandler.OutgoingPaymentRate)
		})

		// GL account classes
		r.Route("/gl-accounts/{id}", func(r chi.Router) {
			r.Get("/classes/{classID}", cfg.GlClassHandler.CheckClass)
			r.Get("/debit", cfg.GlClassHandler.CheckDebit)
		})
	})

	return r
}
