package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig is optional as a whole: with an empty Host the server
// runs on the in-memory store instead of Postgres.
type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "internhub"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Database = DatabaseConfig{
		Host:           opt("DB_HOST", ""),
		Port:           opt("DB_PORT", "5432"),
		Name:           opt("DB_NAME", ""),
		User:           opt("DB_USER", ""),
		Password:       opt("DB_PASSWORD", ""),
		SSLMode:        opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     optInt("REDIS_PORT", 6379),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       optInt("REDIS_DB", 0),
		TTL:      optDuration("REDIS_TTL_SECONDS", 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_SECONDS", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_SECONDS", 7*24*time.Hour),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY", ""),
		Model:  opt("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}
