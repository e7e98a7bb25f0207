package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "b")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.HTTPPort != "8080" {
		t.Fatalf("default port: got %q", cfg.App.HTTPPort)
	}
	if cfg.Database.Enabled() {
		t.Fatal("database must be disabled without DB_HOST")
	}
	if cfg.Redis.Port != 6379 || cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("redis defaults: %+v", cfg.Redis)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("jwt default expiry: %v", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing secrets")
	}
	if !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("error should name the missing variable: %v", err)
	}
}

func TestLoadDatabaseEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_POOL_MAX_CONNS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Database.Enabled() {
		t.Fatal("database should be enabled")
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Fatalf("pool max conns: got %d", cfg.Database.PoolMaxConns)
	}
}
