// Package config loads service settings from defaults, an optional TOML
// file, a .env file and the process environment, in that order (last wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ewilliams-labs/moodweather/internal/adapters/lastfm"
	"github.com/ewilliams-labs/moodweather/internal/adapters/openweather"
	"github.com/ewilliams-labs/moodweather/internal/adapters/upstream"
)

// ErrMissingAPIKey is returned when a provider API key is not configured.
var ErrMissingAPIKey = errors.New("config: missing api key")

type Config struct {
	Server      ServerConfig    `koanf:"server"`
	OpenWeather ProviderConfig  `koanf:"openweather"`
	Lastfm      ProviderConfig  `koanf:"lastfm"`
	Upstream    UpstreamConfig  `koanf:"upstream"`
	RateLimit   RateLimitConfig `koanf:"ratelimit"`
	Log         LogConfig       `koanf:"log"`
}

// ServerConfig holds the inbound HTTP listener settings.
type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// ProviderConfig holds the credentials and endpoint of one upstream API.
type ProviderConfig struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
}

// UpstreamConfig bounds outbound calls.
type UpstreamConfig struct {
	Timeout time.Duration `koanf:"timeout"` // per call, e.g. "5s"
}

// RateLimitConfig configures the inbound token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

// LogConfig selects an optional log file in addition to stderr.
type LogConfig struct {
	File string `koanf:"file"` // empty disables the file sink
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		OpenWeather: ProviderConfig{BaseURL: openweather.DefaultBaseURL},
		Lastfm:      ProviderConfig{BaseURL: lastfm.DefaultBaseURL},
		Upstream:    UpstreamConfig{Timeout: upstream.DefaultTimeout},
		RateLimit:   RateLimitConfig{RPS: 10, Burst: 20},
		Log:         LogConfig{File: "app.log"},
	}
}

// sections are the top-level keys environment variables may set.
var sections = map[string]struct{}{
	"server":      {},
	"openweather": {},
	"lastfm":      {},
	"upstream":    {},
	"ratelimit":   {},
	"log":         {},
}

// Options controls where Load looks for settings.
type Options struct {
	ConfigPaths []string // TOML files, later files win
	EnvFiles    []string // dotenv files; missing files are skipped
}

// DefaultOptions reads ./config.toml and ./.env when present.
func DefaultOptions() Options {
	return Options{
		ConfigPaths: []string{"config.toml"},
		EnvFiles:    []string{".env"},
	}
}

// Load builds the configuration and validates it.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	for _, path := range opts.ConfigPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
		}
	}

	// godotenv never overrides variables already set in the environment.
	for _, path := range opts.EnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps OPENWEATHER_API_KEY to openweather.api_key. Variables outside
// the known sections are ignored.
func envKey(s string) string {
	section, rest, ok := strings.Cut(strings.ToLower(s), "_")
	if !ok || rest == "" {
		return ""
	}
	if _, known := sections[section]; !known {
		return ""
	}
	return section + "." + rest
}

func (c *Config) normalize() {
	c.OpenWeather.APIKey = strings.TrimSpace(c.OpenWeather.APIKey)
	c.Lastfm.APIKey = strings.TrimSpace(c.Lastfm.APIKey)
	if c.OpenWeather.BaseURL == "" {
		c.OpenWeather.BaseURL = openweather.DefaultBaseURL
	}
	if c.Lastfm.BaseURL == "" {
		c.Lastfm.BaseURL = lastfm.DefaultBaseURL
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = upstream.DefaultTimeout
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = 1
	}
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	var missing []string
	if c.OpenWeather.APIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}
	if c.Lastfm.APIKey == "" {
		missing = append(missing, "LASTFM_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAPIKey, strings.Join(missing, ", "))
	}
	return nil
}

// RateLimitEnabled reports whether inbound rate limiting is on.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimit.RPS > 0
}
