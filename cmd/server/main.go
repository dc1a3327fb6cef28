package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	httpAdapter "github.com/mgoulart/billtrack/internal/adapter/http"
	"github.com/mgoulart/billtrack/internal/adapter/http/handler"
	"github.com/mgoulart/billtrack/internal/adapter/http/middleware"
	postgresRepo "github.com/mgoulart/billtrack/internal/adapter/repository/postgres"
	redisRepo "github.com/mgoulart/billtrack/internal/adapter/repository/redis"
	"github.com/mgoulart/billtrack/internal/infrastructure/config"
	"github.com/mgoulart/billtrack/internal/infrastructure/logger"
	"github.com/mgoulart/billtrack/internal/infrastructure/metrics"
	"github.com/mgoulart/billtrack/internal/infrastructure/postgres"
	"github.com/mgoulart/billtrack/internal/infrastructure/redis"
	"github.com/mgoulart/billtrack/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bl := bootstrapLogger()
		bl.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
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
	billRepo := postgresRepo.NewBillRepository(pool)
	budgetRepo := postgresRepo.NewBudgetRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)
	m := metrics.New()

	// Initialize use cases
	billUC := usecase.NewBillUseCase(txManager, billRepo, cache, idGen, retrier, m)
	budgetUC := usecase.NewBudgetUseCase(budgetRepo, billRepo, cache, idGen, m)
	reminderUC := usecase.NewReminderUseCase(billRepo, m)

	// Initialize handlers
	billHandler := handler.NewBillHandler(billUC)
	budgetHandler := handler.NewBudgetHandler(budgetUC)
	reminderHandler := handler.NewReminderHandler(reminderUC, cfg.DueSoonDays)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BillHandler:     billHandler,
		BudgetHandler:   budgetHandler,
		ReminderHandler: reminderHandler,
		HealthHandler:   healthHandler,
		Logging:         middleware.NewLoggingMiddleware(log),
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

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

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func bootstrapLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
