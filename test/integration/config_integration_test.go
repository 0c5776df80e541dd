//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/project-blog/internal/platform/config"
)

// TestConfig_ShippedProfiles loads every profile in configs/ and checks it
// validates.
func TestConfig_ShippedProfiles(t *testing.T) {
	tests := []struct {
		profile    string
		wantEnv    string
		wantFormat string
		wantTrace  bool
	}{
		{"local", "local", "pretty", false},
		{"prod", "prod", "json", true},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir("../..")

			cfg, err := config.Load(tt.profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, tt.wantEnv, cfg.App.Environment)
			assert.Equal(t, tt.wantFormat, cfg.Log.Format)
			assert.Equal(t, tt.wantTrace, cfg.Telemetry.Enabled)
			assert.Equal(t, config.DefaultSiteTitle, cfg.Site.Title)
			assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
			assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		})
	}
}

// TestConfig_EnvOverridesProfile checks env vars win over profile files.
func TestConfig_EnvOverridesProfile(t *testing.T) {
	t.Chdir("../..")
	t.Setenv("APP_LOG_FORMAT", "text")
	t.Setenv("APP_SITE_TITLE", "Lab Notes")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load("local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "Lab Notes", cfg.Site.Title)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}
