// Package config loads the service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize caps request bodies. The blog only serves GETs.
	DefaultMaxRequestSize = 64 << 10

	// DefaultLogFileMaxSizeMB is the size at which the log file rotates.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is how many rotated files are kept.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is how long rotated files are kept.
	DefaultLogFileMaxAgeDays = 28

	// DefaultSiteTitle is shown in the page header.
	DefaultSiteTitle = "AI Project Blog"

	// DefaultSiteFooter is shown in the page footer.
	DefaultSiteFooter = "© 2025 Deepika's AI Blog. All rights reserved."
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Site      SiteConfig      `koanf:"site"      validate:"required"`
	CORS      CORSConfig      `koanf:"cors"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// SiteConfig contains the text of the shared page chrome.
type SiteConfig struct {
	Title  string `koanf:"title"  validate:"required"`
	Footer string `koanf:"footer" validate:"required"`
}

// CORSConfig controls cross-origin access to the JSON API.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowed_origins" validate:"dive,required,origin"`
	MaxAge         time.Duration `koanf:"max_age"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "project-blog",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "5s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/blog.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "project-blog",
		"telemetry.sampling_rate": 1.0,

		"site.title":  DefaultSiteTitle,
		"site.footer": DefaultSiteFooter,

		"cors.allowed_origins": []string{"*"},
		"cors.max_age":         "12h",
	}
}

// Load loads configuration with the following precedence (highest first):
//  1. Environment variables (APP_ prefix, "_" separates levels)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, "configs/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, fmt.Sprintf("configs/%s.yaml", profile)); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err := k.Load(env.ProviderWithValue("APP_", ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// multiWordKeys are leaf keys containing underscores. Without this table
// APP_SERVER_READ_TIMEOUT would map to server.read.timeout.
var multiWordKeys = []string{
	"read_timeout",
	"write_timeout",
	"idle_timeout",
	"shutdown_timeout",
	"request_timeout",
	"max_request_size",
	"max_size",
	"max_backups",
	"max_age",
	"service_name",
	"sampling_rate",
	"allowed_origins",
}

// envKey converts APP_SERVER_READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "APP_"))

	for _, word := range multiWordKeys {
		if strings.HasSuffix(key, "_"+word) || key == word {
			prefix := strings.TrimSuffix(key, word)
			return strings.ReplaceAll(prefix, "_", ".") + word
		}
	}

	return strings.ReplaceAll(key, "_", ".")
}

// listKeys are keys whose env value is a comma-separated list.
var listKeys = map[string]bool{
	"cors.allowed_origins": true,
}

func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}

	items := strings.Split(value, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return key, items
}

// loadFileIfExists loads a YAML file; a missing file is not an error.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
