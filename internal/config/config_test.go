package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"linkrouter/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 5, cfg.Router.MaxAttempts)
	require.Equal(t, 24*time.Hour, cfg.Router.PreviewCacheTTL)
	require.Equal(t, "linkrouter", cfg.Database.DatabaseName)
	require.EqualValues(t, 2097152, cfg.Preview.MaxBodyBytes)
	require.Equal(t, 10, cfg.Worker.MaxWorkers)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9090"
  allowedOrigins: ["https://wykop.pl"]
router:
  maxAttempts: 2
  previewCacheTTL: 1h
preview:
  requestsPerSecond: 0.5
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://wykop.pl"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 2, cfg.Router.MaxAttempts)
	require.Equal(t, time.Hour, cfg.Router.PreviewCacheTTL)
	require.InDelta(t, 0.5, cfg.Preview.RequestsPerSecond, 1e-9)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ROUTER_MAX_ATTEMPTS", "9")

	cfg, err := config.Load(writeConfig(t, "router:\n  maxAttempts: 2\n"))
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Router.MaxAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
