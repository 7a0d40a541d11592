package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ledgerline/ledgerline/internal/app"
	"github.com/ledgerline/ledgerline/internal/company"
	"github.com/ledgerline/ledgerline/internal/invoices"
	"github.com/ledgerline/ledgerline/internal/ledger"
	"github.com/ledgerline/ledgerline/internal/observability"
	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/payments"
	"github.com/ledgerline/ledgerline/internal/platform/cache"
	"github.com/ledgerline/ledgerline/internal/platform/db"
	"github.com/ledgerline/ledgerline/internal/products"
	"github.com/ledgerline/ledgerline/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	var appCache *cache.Cache
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", slog.Any("error", err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		appCache = cache.NewCache(redisClient, "ledgerline", cfg.CacheTTL)
	}

	companyRepo := company.NewRepository(dbpool)
	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(logger, companyService)

	partyRepo := parties.NewRepository(dbpool)
	partyService := parties.NewService(partyRepo)
	partyHandler := parties.NewHandler(logger, partyService)

	productRepo := products.NewRepository(dbpool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService)

	invoiceRepo := invoices.NewRepository(dbpool)
	invoiceService := invoices.NewService(invoiceRepo, partyRepo, companyRepo, appCache, logger)
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	paymentRepo := payments.NewRepository(dbpool)
	paymentService := payments.NewService(paymentRepo, partyRepo, appCache, logger)
	paymentHandler := payments.NewHandler(logger, paymentService)

	ledgerRepo := ledger.NewRepository(dbpool)
	ledgerService := ledger.NewService(ledgerRepo, partyRepo, appCache)
	ledgerHandler := ledger.NewHandler(logger, ledgerService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(inspector, logger)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		CompanyHandler:  companyHandler,
		PartiesHandler:  partyHandler,
		ProductsHandler: productHandler,
		InvoicesHandler: invoiceHandler,
		PaymentsHandler: paymentHandler,
		LedgerHandler:   ledgerHandler,
		JobsHandler:     jobsHandler,
		Metrics:         metrics,
		Pool:            dbpool,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
