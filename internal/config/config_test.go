package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv убирает переменные STOREFRONT_*, которые могли остаться в окружении
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_URL", "DB_PATH", "STORAGE", "LOG_LEVEL", "REGISTRATION_POLICY",
		"OTLP_ENDPOINT", "OTLP_INSECURE", "HTTP_TIMEOUT",
	} {
		t.Setenv(EnvPrefix+key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, StorageBolt, cfg.StorageDriver)
	assert.Equal(t, RegistrationManual, cfg.RegistrationPolicy)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOREFRONT_SERVER_URL", "https://shop.example.com/api/")
	t.Setenv("STOREFRONT_DB_PATH", "/tmp/shop.db")
	t.Setenv("STOREFRONT_STORAGE", "SQLite")
	t.Setenv("STOREFRONT_REGISTRATION_POLICY", "auto-login")
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "5s")
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")
	t.Setenv("STOREFRONT_OTLP_ENDPOINT", "localhost:4317")
	t.Setenv("STOREFRONT_OTLP_INSECURE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/api/", cfg.ServerURL)
	assert.Equal(t, "/tmp/shop.db", cfg.DBPath)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, RegistrationAutoLogin, cfg.RegistrationPolicy)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	assert.True(t, cfg.OTLPInsecure)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TimeoutInSeconds(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "12")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STOREFRONT_HTTP_TIMEOUT", "soon")
	_, err := Load("")
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("STOREFRONT_OTLP_INSECURE", "maybe")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv не перезаписывает уже заданные переменные, t.Setenv восстановит их после теста
	require.NoError(t, os.Unsetenv("STOREFRONT_SERVER_URL"))
	require.NoError(t, os.Unsetenv("STOREFRONT_DB_PATH"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"STOREFRONT_SERVER_URL=http://10.0.2.2:8000/api/\nSTOREFRONT_DB_PATH=from-file.db\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("STOREFRONT_SERVER_URL")
		_ = os.Unsetenv("STOREFRONT_DB_PATH")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.2.2:8000/api/", cfg.ServerURL)
	assert.Equal(t, "from-file.db", cfg.DBPath)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		modify  func(c *Config)
		name    string
		errMsg  string
		wantErr bool
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "empty server", modify: func(c *Config) { c.ServerURL = " " }, wantErr: true, errMsg: "server URL"},
		{name: "empty db path", modify: func(c *Config) { c.DBPath = "" }, wantErr: true, errMsg: "database path"},
		{name: "unknown driver", modify: func(c *Config) { c.StorageDriver = "redis" }, wantErr: true, errMsg: "unknown storage driver"},
		{name: "unknown policy", modify: func(c *Config) { c.RegistrationPolicy = "never" }, wantErr: true, errMsg: "unknown registration policy"},
		{name: "zero timeout", modify: func(c *Config) { c.HTTPTimeout = 0 }, wantErr: true, errMsg: "HTTP timeout"},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }, wantErr: true, errMsg: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
