package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env first so ATG_ENV itself can come from it
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("ATG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	config, err := decode(v)
	if err != nil {
		return nil, err
	}
	config.Environment = env
	return config, nil
}

// decode unmarshals the viper state and converts raw duration numbers
func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	processDurations(&config)
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("server.topUpUrl", "/topup")

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.boltPath", "storefront.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "")

	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.timeout", 10) // seconds

	v.SetDefault("purchase.maxRetries", 5)
	v.SetDefault("purchase.retryIntervalMs", 20)
	v.SetDefault("purchase.reconcileIntervalSeconds", 60)
	v.SetDefault("purchase.staleAfterSeconds", 120)

	v.SetDefault("topup.minAmount", 1000)
	v.SetDefault("topup.maxAmount", 1000000)
	v.SetDefault("topup.bonusCoinPercent", "0")

	v.SetDefault("catalog.path", "")
}

// getEnvironment determines the environment to use based on ATG_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("ATG_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"ATG_DB_DRIVER":                "database.driver",
		"ATG_DB_BOLT_PATH":             "database.boltPath",
		"ATG_DB_HOST":                  "database.host",
		"ATG_DB_PORT":                  "database.port",
		"ATG_DB_USERNAME":              "database.username",
		"ATG_DB_PASSWORD":              "database.password",
		"ATG_DB_NAME":                  "database.database",
		"ATG_DB_SSL_MODE":              "database.sslMode",
		"ATG_SERVER_HOST":              "server.host",
		"ATG_SERVER_PORT":              "server.port",
		"ATG_LOGGER_LEVEL":             "logger.level",
		"ATG_AUTH_JWT_SECRET":          "auth.jwtSecret",
		"ATG_TELEGRAM_BOT_TOKEN":       "telegram.botToken",
		"ATG_TELEGRAM_CHAT_ID":         "telegram.chatId",
		"ATG_TELEGRAM_ENABLED":         "telegram.enabled",
		"ATG_TOPUP_BONUS_COIN_PERCENT": "topup.bonusCoinPercent",
		"ATG_CATALOG_PATH":             "catalog.path",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"ATG_DB_MAX_OPEN_CONNS":                   "database.maxOpenConns",
		"ATG_DB_MAX_IDLE_CONNS":                   "database.maxIdleConns",
		"ATG_DB_RETRY_ATTEMPTS":                   "database.retryAttempts",
		"ATG_PURCHASE_MAX_RETRIES":                "purchase.maxRetries",
		"ATG_PURCHASE_RETRY_INTERVAL_MS":          "purchase.retryIntervalMs",
		"ATG_PURCHASE_RECONCILE_INTERVAL_SECONDS": "purchase.reconcileIntervalSeconds",
		"ATG_PURCHASE_STALE_AFTER_SECONDS":        "purchase.staleAfterSeconds",
		"ATG_TOPUP_MIN_AMOUNT":                    "topup.minAmount",
		"ATG_TOPUP_MAX_AMOUNT":                    "topup.maxAmount",
	}
	for env, key := range intOverrides {
		if val, ok := getEnvInt(env); ok && val >= 0 {
			v.Set(key, val)
		}
	}
}

// getEnvInt reads an environment variable as int, reporting whether it was set and valid
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Telegram.Timeout = config.Telegram.Timeout * time.Second

	config.Purchase.RetryInterval = config.Purchase.RetryInterval * time.Millisecond
	config.Purchase.ReconcileInterval = config.Purchase.ReconcileInterval * time.Second
	config.Purchase.StaleAfter = config.Purchase.StaleAfter * time.Second
}
