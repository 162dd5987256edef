package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atgamehub/storefront/internal/infrastructure/config"
)

func validDatabaseSection() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          "5432",
		Username:      "storefront",
		Password:      "secret",
		Database:      "storefront",
		MaxOpenConns:  20,
		MaxIdleConns:  10,
		QueryTimeout:  10 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    2 * time.Second,
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(validDatabaseSection(), "warn")
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "host=localhost port=5432 user=storefront password=secret dbname=storefront sslmode=disable", cfg.DSN())
}

func TestNewConfigRejectsInvalidSections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.DatabaseConfig)
	}{
		{"non numeric port", func(c *config.DatabaseConfig) { c.Port = "pg" }},
		{"port out of range", func(c *config.DatabaseConfig) { c.Port = "70000" }},
		{"missing host", func(c *config.DatabaseConfig) { c.Host = "" }},
		{"missing database", func(c *config.DatabaseConfig) { c.Database = "" }},
		{"bad ssl mode", func(c *config.DatabaseConfig) { c.SSLMode = "sometimes" }},
		{"no pool", func(c *config.DatabaseConfig) { c.MaxOpenConns = 0 }},
		{"no timeout", func(c *config.DatabaseConfig) { c.QueryTimeout = 0 }},
		{"negative retries", func(c *config.DatabaseConfig) { c.RetryAttempts = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := validDatabaseSection()
			tt.mutate(&section)
			_, err := NewConfig(section, "info")
			assert.Error(t, err)
		})
	}
}
