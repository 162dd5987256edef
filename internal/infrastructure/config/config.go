package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Telegram    TelegramConfig `mapstructure:"telegram"`
	Purchase    PurchaseConfig `mapstructure:"purchase"`
	TopUp       TopUpConfig    `mapstructure:"topup"`
	Catalog     CatalogConfig  `mapstructure:"catalog"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	TopUpURL          string        `mapstructure:"topUpUrl"` // link shown with insufficient balance errors
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or bolt
	BoltPath        string        `mapstructure:"boltPath"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or console
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// TelegramConfig contains the staff broadcast channel settings
type TelegramConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	BotToken string        `mapstructure:"botToken"`
	ChatID   int64         `mapstructure:"chatId"`
	Timeout  time.Duration `mapstructure:"timeout"` // seconds
}

// PurchaseConfig contains purchase sequence settings
type PurchaseConfig struct {
	MaxRetries        int           `mapstructure:"maxRetries"`
	RetryInterval     time.Duration `mapstructure:"retryIntervalMs"`          // milliseconds
	ReconcileInterval time.Duration `mapstructure:"reconcileIntervalSeconds"` // seconds
	StaleAfter        time.Duration `mapstructure:"staleAfterSeconds"`        // seconds
}

// TopUpConfig contains top-up workflow settings
type TopUpConfig struct {
	MinAmount        int64  `mapstructure:"minAmount"`
	MaxAmount        int64  `mapstructure:"maxAmount"`
	BonusCoinPercent string `mapstructure:"bonusCoinPercent"` // decimal string, e.g. "2.5"
}

// CatalogConfig points at the catalog document; empty uses the built-in one
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}
