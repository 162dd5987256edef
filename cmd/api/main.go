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
	"github.com/shopspring/decimal"

	"github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/messaging"
	"github.com/atgamehub/storefront/internal/domain/port/persistence"
	accountUseCase "github.com/atgamehub/storefront/internal/domain/usecase/account"
	catalogUseCase "github.com/atgamehub/storefront/internal/domain/usecase/catalog"
	notificationUseCase "github.com/atgamehub/storefront/internal/domain/usecase/notification"
	orderUseCase "github.com/atgamehub/storefront/internal/domain/usecase/order"
	purchaseUseCase "github.com/atgamehub/storefront/internal/domain/usecase/purchase"
	topupUseCase "github.com/atgamehub/storefront/internal/domain/usecase/topup"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/handler"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/middleware"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/routes"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/boltstore"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/catalog"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/database"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/logger"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/repository"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/atgamehub/storefront/internal/infrastructure/adapter/time"
	"github.com/atgamehub/storefront/internal/infrastructure/config"
)

// stores bundles the persistence adapters of the selected driver
type stores struct {
	uow           persistence.UnitOfWork
	accounts      persistence.AccountRepository
	notifications persistence.NotificationRepository
	settings      persistence.SettingsRepository
	ping          handler.Pinger
	close         func() error
}

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

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      core.ParseLogLevel(cfg.Logger.Level),
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	bonusPercent, err := decimal.NewFromString(cfg.TopUp.BonusCoinPercent)
	if err != nil {
		appLogger.Error("Invalid top-up bonus percentage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.Error("Failed to load catalog", map[string]any{"error": err.Error(), "path": cfg.Catalog.Path})
		os.Exit(1)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	st, err := openStores(rootCtx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := st.close(); err != nil {
			appLogger.Error("Failed to close storage", map[string]any{"error": err.Error()})
		}
	}()

	broadcaster := newBroadcaster(cfg.Telegram, appLogger)

	// Initialize use cases
	accounts := accountUseCase.NewAccountUseCase(st.accounts, tp, appLogger, accountUseCase.RetryPolicy{
		MaxRetries:   cfg.Purchase.MaxRetries,
		Interval:     cfg.Purchase.RetryInterval,
		MaxInterval:  accountUseCase.DefaultRetryPolicy().MaxInterval,
		JitterFactor: accountUseCase.DefaultRetryPolicy().JitterFactor,
	})
	purchases := purchaseUseCase.NewPurchaseService(products, accounts, st.uow, broadcaster, tp, appLogger)
	reconciler := purchaseUseCase.NewReconciler(st.uow, cfg.Purchase.StaleAfter, tp, appLogger)
	orders := orderUseCase.NewOrderUseCase(st.uow, tp, appLogger)
	topups := topupUseCase.NewTopUpUseCase(st.uow, broadcaster, topupUseCase.Limits{
		MinAmount:        cfg.TopUp.MinAmount,
		MaxAmount:        cfg.TopUp.MaxAmount,
		BonusCoinPercent: bonusPercent,
	}, tp, appLogger)
	notifications := notificationUseCase.NewNotificationUseCase(st.accounts, st.notifications, tp, appLogger)
	catalogs := catalogUseCase.NewCatalogUseCase(products, st.settings, appLogger)

	go reconciler.Run(rootCtx, cfg.Purchase.ReconcileInterval)

	// Initialize API handlers
	errResponder := handler.NewErrorResponder(appLogger, cfg.Server.TopUpURL)
	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, auth, routes.Handlers{
		Health:       handler.NewHealthHandler(st.ping),
		Catalog:      handler.NewCatalogHandler(catalogs, errResponder, appLogger),
		Account:      handler.NewAccountHandler(accounts, errResponder, appLogger),
		Purchase:     handler.NewPurchaseHandler(purchases, reconciler, errResponder, appLogger),
		Order:        handler.NewOrderHandler(orders, errResponder, appLogger),
		TopUp:        handler.NewTopUpHandler(topups, errResponder, appLogger),
		Notification: handler.NewNotificationHandler(notifications, errResponder, appLogger),
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	// Stop the reconciler before the store closes
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStores connects the configured driver and returns its adapters
func openStores(ctx context.Context, cfg *config.Config, appLogger core.Logger, tp core.TimeProvider) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverBolt:
		store, err := boltstore.Open(cfg.Database.BoltPath, tp, appLogger)
		if err != nil {
			return nil, err
		}
		return &stores{
			uow:           boltstore.NewUnitOfWork(store),
			accounts:      boltstore.NewAccountRepository(store),
			notifications: boltstore.NewNotificationRepository(store),
			settings:      boltstore.NewSettingsRepository(store),
			close:         store.Close,
		}, nil

	case config.DriverPostgres:
		dbConfig, err := database.NewConfig(cfg.Database, cfg.Logger.Level)
		if err != nil {
			return nil, err
		}

		manager := database.NewManager(dbConfig, appLogger, tp)
		db, err := manager.Connect(ctx)
		if err != nil {
			return nil, err
		}
		if err := manager.Migrate(ctx); err != nil {
			_ = manager.Close()
			return nil, err
		}

		return &stores{
			uow:           manager.CreateUnitOfWork(),
			accounts:      repository.NewAccountRepository(db, tp, appLogger),
			notifications: repository.NewNotificationRepository(db, appLogger),
			settings:      manager.CreateSettingsRepository(),
			ping:          manager.Ping,
			close:         manager.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// newBroadcaster returns the staff channel, falling back to the log when Telegram is off or unreachable
func newBroadcaster(cfg config.TelegramConfig, appLogger core.Logger) messaging.Broadcaster {
	if !cfg.Enabled {
		return telegram.NewLogBroadcaster(appLogger)
	}

	bot, err := telegram.NewBroadcaster(cfg.BotToken, cfg.ChatID, cfg.Timeout, appLogger)
	if err != nil {
		appLogger.Error("Failed to start Telegram broadcaster, staff messages go to the log", map[string]any{
			"error": err.Error(),
		})
		return telegram.NewLogBroadcaster(appLogger)
	}
	return bot
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
	switch cfg.Database.Driver {
	case config.DriverBolt:
		if cfg.Database.BoltPath == "" {
			missingConfigs = append(missingConfigs, "database.boltPath (or ATG_DB_BOLT_PATH environment variable)")
		}
	case config.DriverPostgres:
		required := map[string]string{
			"database.host (or ATG_DB_HOST environment variable)":         cfg.Database.Host,
			"database.port (or ATG_DB_PORT environment variable)":         cfg.Database.Port,
			"database.username (or ATG_DB_USERNAME environment variable)": cfg.Database.Username,
			"database.password (or ATG_DB_PASSWORD environment variable)": cfg.Database.Password,
			"database.database (or ATG_DB_NAME environment variable)":     cfg.Database.Database,
		}
		for key, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be one of: %s, %s",
			cfg.Database.Driver, config.DriverPostgres, config.DriverBolt)
	}

	// Validate auth and purchase configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or ATG_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Purchase.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "purchase.maxRetries")
	}
	if cfg.Purchase.ReconcileInterval <= 0 {
		missingConfigs = append(missingConfigs, "purchase.reconcileIntervalSeconds")
	}
	if cfg.Telegram.Enabled && (cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == 0) {
		missingConfigs = append(missingConfigs, "telegram.botToken and telegram.chatId")
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
		if cfg.Database.Driver == config.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
