package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfigDir(t *testing.T, env, yaml string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(yaml), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = nil
	t.Cleanup(func() {
		ConfigPaths = oldPaths
		DotEnvPaths = oldDotEnv
	})
	t.Setenv("CL_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	t.Run("file values and defaults", func(t *testing.T) {
		useConfigDir(t, Test, `
server:
  port: 9090
  rateLimit: "10-S"
database:
  host: db.local
  username: ledger
  password: secret
  database: credits
  queryTimeout: 3
ledger:
  seedAccounts: ["alice", "bob"]
redis:
  enabled: true
`)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "10-S", cfg.Server.RateLimit)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.local", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "READ COMMITTED", cfg.Database.IsolationLevel)
		assert.Equal(t, int64(10), cfg.Ledger.StartingBalance)
		assert.Equal(t, 20, cfg.Ledger.DefaultPageSize)
		assert.Equal(t, int64(3), cfg.Ledger.LowBalanceThreshold)
		assert.Equal(t, []string{"alice", "bob"}, cfg.Ledger.SeedAccounts)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "idem:", cfg.Redis.KeyPrefix)
		assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	})

	t.Run("environment overrides win", func(t *testing.T) {
		useConfigDir(t, Test, `
database:
  host: db.local
  password: from-file
`)
		t.Setenv("CL_DB_HOST", "db.override")
		t.Setenv("CL_DB_PASSWORD", "from-env")
		t.Setenv("CL_LEDGER_STARTING_BALANCE", "0")
		t.Setenv("CL_LEDGER_SEED_ACCOUNTS", "carol, dave")
		t.Setenv("CL_REDIS_ENABLED", "true")
		t.Setenv("CL_REDIS_IDEMPOTENCY_TTL_SECONDS", "60")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "db.override", cfg.Database.Host)
		assert.Equal(t, "from-env", cfg.Database.Password)
		assert.Equal(t, int64(0), cfg.Ledger.StartingBalance)
		assert.Equal(t, []string{"carol", "dave"}, cfg.Ledger.SeedAccounts)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, time.Minute, cfg.Redis.IdempotencyTTL)
	})

	t.Run("missing file", func(t *testing.T) {
		useConfigDir(t, Test, "server: {}\n")
		t.Setenv("CL_ENV", "staging")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b,"))
	assert.Empty(t, splitList(""))
}
