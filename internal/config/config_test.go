package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestNewView_Defaults verifies the fallback source and reference base URL are the defaults.
func TestNewView_Defaults(t *testing.T) {
	unsetEnv(t, "API_BASE_URL", "DATA_SOURCE", "ORDERVIEW_CONFIG")

	cfg, rest, err := NewView([]string{"build"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, cfg.DataSource)
	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, "orderview.yaml", cfg.OptionsFile)
	assert.Equal(t, "Orders", cfg.Heading)
	assert.Equal(t, []string{"build"}, rest)
}

// TestNewView_EnvOverridesFlags verifies environment values win over flags.
func TestNewView_EnvOverridesFlags(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.test/api")
	t.Setenv("DATA_SOURCE", SourceLive)

	cfg, _, err := NewView([]string{"-b", "http://flag.test", "-source", SourceFallback})
	require.NoError(t, err)
	assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
	assert.Equal(t, SourceLive, cfg.DataSource)
}

// TestNewView_UnknownSource verifies only fallback and live are accepted.
func TestNewView_UnknownSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "cache")

	_, _, err := NewView(nil)
	require.Error(t, err)
}

// TestNewAPI_Flags verifies flags are applied when no environment is set.
func TestNewAPI_Flags(t *testing.T) {
	unsetEnv(t, "DATABASE_URI")
	t.Setenv("RUN_ADDRESS", ":9000")

	cfg, err := NewAPI([]string{"-d", "postgres://x"})
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.RunAddress)
	assert.Equal(t, "postgres://x", cfg.DatabaseURI)
}
