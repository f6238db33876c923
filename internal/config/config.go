// Package config holds the server-level configuration: listen address,
// database selection, CORS origins, and request timeouts. Provider
// configuration lives with the llm package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/store"
)

// Config is the serve command's configuration.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	DBDriver store.Driver
	DBDSN    string

	// AllowedOrigins feeds the CORS middleware. "*" allows any origin.
	AllowedOrigins []string

	// RequestTimeout bounds one whole request cycle including the
	// generation calls inside it.
	RequestTimeout time.Duration

	// Adaptive switches the difficulty policy from the answered-count
	// ladder to the performance-driven variant.
	Adaptive bool
}

// Default returns the local-development defaults.
func Default() Config {
	return Config{
		Addr:           ":8000",
		DBDriver:       store.DriverSQLite,
		DBDSN:          "",
		AllowedOrigins: []string{"*"},
		RequestTimeout: 60 * time.Second,
	}
}

// FromEnv reads PRAVYA_* variables on top of the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("PRAVYA_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PRAVYA_DB_DRIVER"); v != "" {
		cfg.DBDriver = store.Driver(v)
	}
	if v := os.Getenv("PRAVYA_DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("PRAVYA_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("PRAVYA_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("PRAVYA_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("PRAVYA_ADAPTIVE_DIFFICULTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PRAVYA_ADAPTIVE_DIFFICULTY: %w", err)
		}
		cfg.Adaptive = b
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	switch c.DBDriver {
	case store.DriverSQLite, store.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.DBDriver)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
