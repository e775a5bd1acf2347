package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/finacct/internal/adapter/http"
	"github.com/iho/finacct/internal/adapter/http/handler"
	postgresRepo "github.com/iho/finacct/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/finacct/internal/adapter/repository/redis"
	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/infrastructure/auth"
	"github.com/iho/finacct/internal/infrastructure/config"
	"github.com/iho/finacct/internal/infrastructure/eventpublisher"
	"github.com/iho/finacct/internal/infrastructure/logger"
	"github.com/iho/finacct/internal/infrastructure/metrics"
	"github.com/iho/finacct/internal/infrastructure/postgres"
	"github.com/iho/finacct/internal/infrastructure/redis"
	"github.com/iho/finacct/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	arithmetic := resolveArithmetic(cfg)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	appRepo := postgresRepo.NewPaymentApplicationRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	invoiceCalc := postgresRepo.NewInvoiceCalculator(pool)
	finAccountRepo := postgresRepo.NewFinAccountRepository(pool)
	transRepo := postgresRepo.NewFinAccountTransRepository(pool)
	glAccountRepo := postgresRepo.NewGlAccountRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	groupRepo := postgresRepo.NewPaymentGroupRepository(pool)
	classifier := postgresRepo.NewPaymentClassifier(pool)
	glPoster := postgresRepo.NewGlPoster(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	seqGen := postgresRepo.NewULIDSequenceGenerator()

	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)

	// Initialize use cases. The pending payment set is shared so that
	// reconciliation sees payment updates from an open deposit/withdraw
	// unit of work.
	pendingPayments := usecase.NewPendingPaymentSet()
	finAccountUC := usecase.NewFinAccountUseCase(
		txManager, finAccountRepo, transRepo, paymentRepo,
		paymentRepo, groupRepo, glPoster, outboxRepo, auditRepo,
		seqGen, pendingPayments, arithmetic, m)
	allocationUC := usecase.NewAllocationUseCase(
		txManager, paymentRepo, appRepo, invoiceRepo, invoiceCalc,
		classifier, pendingPayments, outboxRepo, seqGen, m)
	rateUC := usecase.NewExchangeRateUseCase(ledgerRepo)
	glClassUC := usecase.NewGlClassUseCase(glAccountRepo, cache)

	// Initialize handlers
	routerCfg := httpAdapter.RouterConfig{
		FinAccountHandler: handler.NewFinAccountHandler(finAccountUC),
		AllocationHandler: handler.NewAllocationHandler(allocationUC),
		RateHandler:       handler.NewRateHandler(rateUC),
		GlClassHandler:    handler.NewGlClassHandler(glClassUC),
		HealthHandler:     handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:  idempotencyStore,
		Logger:            appLogger,
	}
	if cfg.AuthEnabled {
		routerCfg.JWTManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	router := httpAdapter.NewRouter(routerCfg)

	// Start the outbox publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(nil),
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && publisherCtx.Err() == nil {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// resolveArithmetic builds the monetary rounding settings from config.
func resolveArithmetic(cfg *config.Config) domain.ArithmeticSettings {
	return domain.ArithmeticSettings{
		DecimalScale: cfg.DecimalScale,
		RoundingMode: cfg.RoundingMode,
	}
}
