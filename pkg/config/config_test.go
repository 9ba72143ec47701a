package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults("")
	require.NoError(t, err)

	assert.Equal(t, "poseidon", cfg.ServiceName)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Security.SessionStore)
	assert.Equal(t, "/bidList/list", cfg.Security.SuccessURL)
	assert.Contains(t, cfg.Security.AdminPaths, "/user/**")
	assert.Contains(t, cfg.Security.PublicPaths, "/login")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.HTTP.TrustedProxies)
	assert.Equal(t, float64(30*60), cfg.Security.SessionDuration().Seconds())
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
service_name = "poseidon"

[http]
port = 9090

[database]
driver = "mysql"
dsn = "poseidon:poseidon@tcp(127.0.0.1:3306)/poseidon"

[security]
session_ttl = 15
`), 0o600))

	t.Setenv("POSEIDON_HTTP_PORT", "9191")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 15, cfg.Security.SessionTTL)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadWithDefaults("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("mysql requires dsn", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "mysql"
		cfg.Database.DSN = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "oracle"
		assert.Error(t, cfg.Validate())
	})

	t.Run("redis session store requires redis", func(t *testing.T) {
		cfg := base()
		cfg.Security.SessionStore = "redis"
		assert.Error(t, cfg.Validate())
		cfg.Redis.Enabled = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("kafka requires brokers", func(t *testing.T) {
		cfg := base()
		cfg.Kafka.Enabled = true
		cfg.Kafka.Brokers = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.Port = 70000
		assert.Error(t, cfg.Validate())
	})
}
