package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "ledger"
	cfg.Password = "secret"
	cfg.Database = "credits"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver"},
		{"host", func(c *Config) { c.Host = "" }, "host is required"},
		{"port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"username", func(c *Config) { c.Username = "" }, "username is required"},
		{"database", func(c *Config) { c.Database = "" }, "database name is required"},
		{"ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"pool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=credits sslmode=disable", validConfig().DSN())
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	appConfig := &config.Config{
		Database: config.DatabaseConfig{
			Host:           "db",
			Port:           "6543",
			Username:       "ledger",
			Password:       "secret",
			Database:       "credits",
			QueryTimeout:   3 * time.Second,
			RetryAttempts:  0,
			IsolationLevel: "serializable",
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	cfg := CreateConfigFromViperConfig(appConfig)

	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 0, cfg.RetryAttempts)
	assert.Equal(t, IsolationSerializable, cfg.IsolationLevel)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("99999"))
}
