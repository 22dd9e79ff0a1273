// Package config provides configuration loading and validation for the gateway.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the gateway's process-wide configuration. It is constructed
// once at startup and passed into the dispatcher and server explicitly so
// tests can override every root.
type Config struct {
	// ProjectRoot is where uploaded source files and Scarb projects live.
	ProjectRoot string `envconfig:"GATEWAY_PROJECT_ROOT" default:"upload" validate:"required"`
	// SierraRoot receives Cairo-to-Sierra compilation output.
	SierraRoot string `envconfig:"GATEWAY_SIERRA_ROOT" default:"sierra" validate:"required"`
	// CasmRoot receives Sierra-to-CASM compilation output.
	CasmRoot string `envconfig:"GATEWAY_CASM_ROOT" default:"casm" validate:"required"`
	// CairoDir is the Cairo toolchain checkout; compiler binaries are run
	// through cargo with this as the working directory.
	CairoDir string `envconfig:"GATEWAY_CAIRO_DIR" default:"cairo" validate:"required"`

	// CompileTimeout bounds every external-tool invocation. The default is
	// generous because cargo may rebuild the toolchain on first use.
	CompileTimeout time.Duration `envconfig:"GATEWAY_COMPILE_TIMEOUT" default:"120s"`

	// AuthSecret enables bearer-token authentication when non-empty.
	AuthSecret string `envconfig:"GATEWAY_AUTH_SECRET"`
	// AuthTokenTTL is the lifetime of tokens issued for the gateway.
	AuthTokenTTL time.Duration `envconfig:"GATEWAY_AUTH_TOKEN_TTL" default:"24h"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.CompileTimeout < 0 {
		return fmt.Errorf("config error: compile timeout must be non-negative, got %s", c.CompileTimeout)
	}
	if c.AuthSecret != "" && c.AuthTokenTTL < time.Minute {
		return fmt.Errorf("config error: auth token TTL must be at least one minute, got %s", c.AuthTokenTTL)
	}
	return nil
}

// AuthEnabled reports whether bearer-token authentication is configured.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}
