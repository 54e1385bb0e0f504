package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/dtella/chartledger/internal/adapter/http"
	"github.com/dtella/chartledger/internal/adapter/http/handler"
	postgresRepo "github.com/dtella/chartledger/internal/adapter/repository/postgres"
	redisRepo "github.com/dtella/chartledger/internal/adapter/repository/redis"
	"github.com/dtella/chartledger/internal/infrastructure/config"
	"github.com/dtella/chartledger/internal/infrastructure/logging"
	"github.com/dtella/chartledger/internal/infrastructure/metrics"
	"github.com/dtella/chartledger/internal/infrastructure/postgres"
	"github.com/dtella/chartledger/internal/infrastructure/redis"
	"github.com/dtella/chartledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	log.Logger = logger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	amountRepo := postgresRepo.NewAmountRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	entryUC := usecase.NewEntryUseCase(txManager, accountRepo, entryRepo, amountRepo, idGen)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, amountRepo)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, amountRepo, cache, cfg.BalanceCacheTTL)

	// Initialize handlers
	m := metrics.New()
	accountHandler := handler.NewAccountHandler(accountUC, m)
	entryHandler := handler.NewEntryHandler(entryUC, m)
	balanceHandler := handler.NewBalanceHandler(balanceUC, m)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler: accountHandler,
		EntryHandler:   entryHandler,
		BalanceHandler: balanceHandler,
		LedgerHandler:  ledgerHandler,
		HealthHandler:  healthHandler,
		Logger:         logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
