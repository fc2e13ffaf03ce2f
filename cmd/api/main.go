package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/idempotency"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/cache/redis"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger.Format, coreport.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	ledgerService := ledger.NewLedgerService(dbManager.CreateUnitOfWork(), tp, appLogger, ledger.Config{
		StartingBalance:     cfg.Ledger.StartingBalance,
		DefaultPageSize:     cfg.Ledger.DefaultPageSize,
		MaxPageSize:         cfg.Ledger.MaxPageSize,
		LowBalanceThreshold: cfg.Ledger.LowBalanceThreshold,
	})

	idempotencyStore, closeStore := newIdempotencyStore(ctx, cfg.Redis, appLogger)
	defer closeStore()
	spendGuard := idempotency.NewGuard(ledgerService, idempotencyStore, tp, appLogger, cfg.Redis.IdempotencyTTL)

	// Create seed accounts
	if err := migration.SeedAccounts(ctx, ledgerService, cfg.Ledger.SeedAccounts, cfg.Environment == config.Development); err != nil {
		appLogger.Error("Failed to seed accounts", map[string]any{
			"error": err.Error(),
		})
	}

	if err := dto.RegisterValidators(); err != nil {
		appLogger.Error("Failed to register request validators", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var rateLimiter *limiter.Limiter
	if cfg.Server.RateLimit != "" {
		rateLimiter, err = middleware.NewRateLimiter(cfg.Server.RateLimit)
		if err != nil {
			appLogger.Error("Invalid rate limit", map[string]any{
				"rate_limit": cfg.Server.RateLimit,
				"error":      err.Error(),
			})
			os.Exit(1)
		}
	}

	// Initialize API handlers
	creditHandler := handler.NewCreditHandler(ledgerService, spendGuard, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, creditHandler, healthHandler, rateLimiter, appLogger, dbManager.WithTimeout)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":        server.Addr,
			"env":         cfg.Environment,
			"idempotency": spendGuard.Enabled(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newIdempotencyStore connects to Redis when enabled.
// The returned store is a nil interface when idempotency is off, which makes the guard a pass-through.
func newIdempotencyStore(ctx context.Context, cfg config.RedisConfig, appLogger coreport.Logger) (persistence.IdempotencyStore, func()) {
	if !cfg.Enabled {
		appLogger.Info("Idempotency store disabled", nil)
		return nil, func() {}
	}

	client, err := redis.NewClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	return redis.NewIdempotencyStore(client, cfg.KeyPrefix), func() {
		if err := client.Close(); err != nil {
			appLogger.Warn("Failed to close Redis client", map[string]any{
				"error": err.Error(),
			})
		}
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := []struct {
		value  string
		key    string
		envVar string
	}{
		{cfg.Database.Host, "database.host", "CL_DB_HOST"},
		{cfg.Database.Port, "database.port", "CL_DB_PORT"},
		{cfg.Database.Username, "database.username", "CL_DB_USERNAME"},
		{cfg.Database.Database, "database.database", "CL_DB_NAME"},
	}
	for _, r := range required {
		if r.value != "" {
			continue
		}
		if cfg.Environment == config.Production {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.envVar))
		} else {
			missingConfigs = append(missingConfigs, r.key)
		}
	}

	if cfg.Database.Password == "" && cfg.Environment == config.Production {
		missingConfigs = append(missingConfigs, "database.password (or CL_DB_PASSWORD environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate ledger configuration
	if cfg.Ledger.StartingBalance < 0 {
		return fmt.Errorf("ledger.startingBalance cannot be negative: %d", cfg.Ledger.StartingBalance)
	}

	if cfg.Ledger.MaxPageSize > 0 && cfg.Ledger.DefaultPageSize > cfg.Ledger.MaxPageSize {
		return fmt.Errorf("ledger.defaultPageSize (%d) exceeds ledger.maxPageSize (%d)",
			cfg.Ledger.DefaultPageSize, cfg.Ledger.MaxPageSize)
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr (or CL_REDIS_ADDR environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows every origin in production")
				break
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
