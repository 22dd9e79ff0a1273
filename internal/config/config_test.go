package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "upload", cfg.ProjectRoot)
	assert.Equal(t, "sierra", cfg.SierraRoot)
	assert.Equal(t, "casm", cfg.CasmRoot)
	assert.Equal(t, "cairo", cfg.CairoDir)
	assert.Equal(t, 120*time.Second, cfg.CompileTimeout)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GATEWAY_PROJECT_ROOT", "/srv/projects")
	t.Setenv("GATEWAY_SIERRA_ROOT", "/srv/sierra")
	t.Setenv("GATEWAY_CASM_ROOT", "/srv/casm")
	t.Setenv("GATEWAY_CAIRO_DIR", "/opt/cairo")
	t.Setenv("GATEWAY_COMPILE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/projects", cfg.ProjectRoot)
	assert.Equal(t, "/srv/sierra", cfg.SierraRoot)
	assert.Equal(t, "/srv/casm", cfg.CasmRoot)
	assert.Equal(t, "/opt/cairo", cfg.CairoDir)
	assert.Equal(t, 30*time.Second, cfg.CompileTimeout)
}

func TestValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := &Config{
		ProjectRoot:    "upload",
		SierraRoot:     "sierra",
		CasmRoot:       "casm",
		CairoDir:       "cairo",
		CompileTimeout: -time.Second,
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsMissingRoot(t *testing.T) {
	cfg := &Config{
		SierraRoot: "sierra",
		CasmRoot:   "casm",
		CairoDir:   "cairo",
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsShortTokenTTL(t *testing.T) {
	cfg := &Config{
		ProjectRoot:  "upload",
		SierraRoot:   "sierra",
		CasmRoot:     "casm",
		CairoDir:     "cairo",
		AuthSecret:   "secret",
		AuthTokenTTL: time.Second,
	}
	assert.Error(t, cfg.Validate())
}

func TestAuthEnabled(t *testing.T) {
	cfg := &Config{AuthSecret: "secret"}
	assert.True(t, cfg.AuthEnabled())

	cfg.AuthSecret = ""
	assert.False(t, cfg.AuthEnabled())
}
