package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/config"
	infraconfig "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/config"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, name := range []string{
		"CONTENT_API_URL", "CONTENT_API_TOKEN", "CONTENT_API_TIMEOUT",
		"SERVER_HOST", "SERVER_PORT", "REDIS_ADDR", "LOG_LEVEL", "LOG_FORMAT", "APP_DEBUG",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_TRACES_SAMPLE_RATIO",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_DefaultsToOffline(t *testing.T) {
	isolateEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Offline())
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Redis.Enabled())
	assert.NotEmpty(t, cfg.Server.CORSOrigins)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CONTENT_API_TOKEN", "secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  base_url: https://api.mrdgngroup.com
  timeout: 10s
server:
  port: 9000
  cors_origins: ["https://mansaluxerealty.com"]
logging:
  format: console
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Offline())
	assert.Equal(t, "https://api.mrdgngroup.com", cfg.Backend.BaseURL)
	assert.Equal(t, "secret", cfg.Backend.Token)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://mansaluxerealty.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_RejectsBadBackendURL(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CONTENT_API_URL", "api.local")

	_, err := config.Load("")
	require.Error(t, err)

	var verr *infraconfig.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "backend.base_url", verr.Field)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Server.Port = 70000
	require.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Logging.Level = "loud"
	require.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Validate())

	cfg.Tracing.SampleRatio = 1.5
	require.Error(t, cfg.Validate())

	cfg.Tracing.SampleRatio = 0.25
	require.NoError(t, cfg.Validate())
}

func TestLoad_TracingFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "0.5")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Tracing.Enabled())
	assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
	assert.InDelta(t, 0.5, cfg.Tracing.SampleRatio, 1e-9)
}
