package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/company"
	"github.com/ledgerline/ledgerline/internal/invoices"
	"github.com/ledgerline/ledgerline/internal/ledger"
	"github.com/ledgerline/ledgerline/internal/observability"
	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/payments"
	"github.com/ledgerline/ledgerline/internal/products"
	"github.com/ledgerline/ledgerline/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	CompanyHandler  *company.Handler
	PartiesHandler  *parties.Handler
	ProductsHandler *products.Handler
	InvoicesHandler *invoices.Handler
	PaymentsHandler *payments.Handler
	LedgerHandler   *ledger.Handler
	JobsHandler     *jobs.Handler
	Metrics         *observability.Metrics
	Pool            *pgxpool.Pool
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Handle("/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/company", params.CompanyHandler.MountRoutes)
		r.Route("/parties", func(r chi.Router) {
			params.PartiesHandler.MountRoutes(r)
			params.LedgerHandler.MountRoutes(r)
		})
		r.Route("/products", params.ProductsHandler.MountRoutes)
		r.Route("/invoices", params.InvoicesHandler.MountRoutes)
		r.Route("/payments", params.PaymentsHandler.MountRoutes)
		if params.JobsHandler != nil {
			r.Route("/jobs", params.JobsHandler.MountRoutes)
		}
	})

	return r
}
