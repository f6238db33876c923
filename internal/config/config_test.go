package config

import (
	"testing"
	"time"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/store"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8000" || cfg.DBDriver != store.DriverSQLite {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PRAVYA_ADDR", ":9090")
	t.Setenv("PRAVYA_DB_DRIVER", "postgres")
	t.Setenv("PRAVYA_DB_DSN", "postgres://db/pravya")
	t.Setenv("PRAVYA_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PRAVYA_REQUEST_TIMEOUT", "90s")
	t.Setenv("PRAVYA_ADAPTIVE_DIFFICULTY", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.DBDriver != store.DriverPostgres || cfg.DBDSN != "postgres://db/pravya" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 90*time.Second || !cfg.Adaptive {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("PRAVYA_REQUEST_TIMEOUT", "soon")
	if _, err := FromEnv(); err == nil {
		t.Error("expected error for a bad duration")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DBDriver = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for an unsupported driver")
	}

	cfg = Default()
	cfg.AllowedOrigins = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty origins")
	}
}
