// Package config собирает настройки клиента: значения по умолчанию,
// затем .env файл, затем переменные окружения STOREFRONT_*.
// Флаги командной строки накладываются поверх в пакете cli.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "STOREFRONT_"

// Defaults
const (
	DefaultServerURL   = "http://localhost:8000/api/"
	DefaultDBPath      = "storefront-client.db"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultEnvFile     = ".env"
)

// StorageDriver selects the session store backend
type StorageDriver string

const (
	StorageBolt   StorageDriver = "bolt"
	StorageSQLite StorageDriver = "sqlite"
)

// RegistrationPolicy decides what happens when registration succeeds without tokens
type RegistrationPolicy string

const (
	// RegistrationManual asks the user to log in themselves
	RegistrationManual RegistrationPolicy = "manual"
	// RegistrationAutoLogin logs in with the credentials just registered
	RegistrationAutoLogin RegistrationPolicy = "auto-login"
)

// Config содержит настройки клиента
type Config struct {
	ServerURL          string
	DBPath             string
	StorageDriver      StorageDriver
	LogLevel           string
	RegistrationPolicy RegistrationPolicy
	OTLPEndpoint       string
	HTTPTimeout        time.Duration
	OTLPInsecure       bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ServerURL:          DefaultServerURL,
		DBPath:             DefaultDBPath,
		StorageDriver:      StorageBolt,
		LogLevel:           "warn",
		RegistrationPolicy: RegistrationManual,
		HTTPTimeout:        DefaultHTTPTimeout,
	}
}

// Load builds the configuration. A missing envFile is not an error;
// variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	cfg.ServerURL = readString("SERVER_URL", cfg.ServerURL)
	cfg.DBPath = readString("DB_PATH", cfg.DBPath)
	cfg.StorageDriver = StorageDriver(strings.ToLower(readString("STORAGE", string(cfg.StorageDriver))))
	cfg.LogLevel = readString("LOG_LEVEL", cfg.LogLevel)
	cfg.RegistrationPolicy = RegistrationPolicy(strings.ToLower(readString("REGISTRATION_POLICY", string(cfg.RegistrationPolicy))))
	cfg.OTLPEndpoint = readString("OTLP_ENDPOINT", "")

	var err error
	if cfg.HTTPTimeout, err = readDuration("HTTP_TIMEOUT", cfg.HTTPTimeout); err != nil {
		return Config{}, err
	}
	if cfg.OTLPInsecure, err = readBool("OTLP_INSECURE", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.ServerURL) == "" {
		errs = append(errs, errors.New("server URL cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path cannot be empty"))
	}
	switch c.StorageDriver {
	case StorageBolt, StorageSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q (want %s or %s)", c.StorageDriver, StorageBolt, StorageSQLite))
	}
	switch c.RegistrationPolicy {
	case RegistrationManual, RegistrationAutoLogin:
	default:
		errs = append(errs, fmt.Errorf("unknown registration policy %q (want %s or %s)",
			c.RegistrationPolicy, RegistrationManual, RegistrationAutoLogin))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP timeout must be positive, got %s", c.HTTPTimeout))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps debug/info/warn/error onto slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

func readString(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok && value != "" {
		return value
	}
	return fallback
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := readString(key, "")
	if raw == "" {
		return fallback, nil
	}
	// Голое число трактуем как секунды
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return value, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw := readString(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
	}
	return value, nil
}
