package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests run from this package directory, which has no configs/ folder,
// so Load sees defaults and env vars only unless a test chdirs.

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "project-blog", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultSiteTitle, cfg.Site.Title)
	assert.Equal(t, DefaultSiteFooter, cfg.Site.Footer)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/blog.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "project-blog", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "3s")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")
	t.Setenv("APP_SITE_TITLE", "Another Blog")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "Another Blog", cfg.Site.Title)
}

func TestLoad_EnvListValue(t *testing.T) {
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ProfileFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte(
		"server:\n  port: 9000\nsite:\n  title: Base Title\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "qa.yaml"), []byte(
		"site:\n  title: QA Title\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load("qa")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "QA Title", cfg.Site.Title)
	assert.Equal(t, DefaultSiteFooter, cfg.Site.Footer)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte("server: [\n"), 0o600))
	t.Chdir(dir)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "project-blog", cfg.App.Name)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"APP_SERVER_PORT":             "server.port",
		"APP_SERVER_READ_TIMEOUT":     "server.read_timeout",
		"APP_SERVER_MAX_REQUEST_SIZE": "server.max_request_size",
		"APP_LOG_FILE_MAX_SIZE":       "log.file.max_size",
		"APP_TELEMETRY_SERVICE_NAME":  "telemetry.service_name",
		"APP_CORS_ALLOWED_ORIGINS":    "cors.allowed_origins",
		"APP_CORS_MAX_AGE":            "cors.max_age",
		"APP_SITE_FOOTER":             "site.footer",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, envKey(in), in)
	}
}
