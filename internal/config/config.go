package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile           = ".env"
	defaultPort              = "8080"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultSiteName          = "Dominion Investors LLC"
	defaultTemplatesDir      = "templates"
	defaultPublicDir         = "public"
	defaultCatalogFile       = "data/catalog.yaml"
	defaultFoldersFile       = "data/folders.yaml"
	defaultLogLevel          = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Analytics AnalyticsConfig
	Log       LogConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// SiteConfig locates the catalog, folder map, templates and public assets.
type SiteConfig struct {
	Name         string
	BaseURL      string
	TemplatesDir string
	PublicDir    string
	CatalogFile  string
	FoldersFile  string
	// DevMode reparses templates on every request.
	DevMode bool
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to templates.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, .env overrides, the process
// environment and an optional explicit map, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	// Cloud Run style PORT is honoured when no explicit address is given.
	port := stringWithDefault(lookup, "PORT", defaultPort)

	cfg := Config{
		Server: ServerConfig{
			Addr:              stringWithDefault(lookup, "DOMINION_WEB_ADDR", ":"+port),
			ReadHeaderTimeout: durationWithDefault(lookup, "DOMINION_WEB_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			ReadTimeout:       durationWithDefault(lookup, "DOMINION_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "DOMINION_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "DOMINION_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "DOMINION_WEB_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			Name:         stringWithDefault(lookup, "DOMINION_WEB_SITE_NAME", defaultSiteName),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "DOMINION_WEB_BASE_URL", ""), "/"),
			TemplatesDir: stringWithDefault(lookup, "DOMINION_WEB_TEMPLATES", defaultTemplatesDir),
			PublicDir:    stringWithDefault(lookup, "DOMINION_WEB_PUBLIC", defaultPublicDir),
			CatalogFile:  stringWithDefault(lookup, "DOMINION_WEB_CATALOG", defaultCatalogFile),
			FoldersFile:  stringWithDefault(lookup, "DOMINION_WEB_FOLDERS", defaultFoldersFile),
			DevMode:      boolWithDefault(lookup, "DOMINION_WEB_DEV", false),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "DOMINION_WEB_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "DOMINION_WEB_GTM_CONTAINER_ID", ""),
			Debug:            boolWithDefault(lookup, "DOMINION_WEB_ANALYTICS_DEBUG", false),
		},
		Log: LogConfig{
			Level: strings.ToLower(stringWithDefault(lookup, "DOMINION_WEB_LOG_LEVEL", defaultLogLevel)),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var fields []string
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		fields = append(fields, "Server.Addr")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		fields = append(fields, "Server.ShutdownTimeout")
	}
	if strings.TrimSpace(cfg.Site.CatalogFile) == "" {
		fields = append(fields, "Site.CatalogFile")
	}
	if strings.TrimSpace(cfg.Site.FoldersFile) == "" {
		fields = append(fields, "Site.FoldersFile")
	}
	if strings.TrimSpace(cfg.Site.TemplatesDir) == "" {
		fields = append(fields, "Site.TemplatesDir")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		fields = append(fields, "Log.Level")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
