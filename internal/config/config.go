// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAuthToken is the shared secret assumed when none is configured.
// Meant for local development only.
const DefaultAuthToken = "dev-key"

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Navitia NavitiaConfig `yaml:"navitia"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// AuthConfig defines the static bearer-token check.
type AuthConfig struct {
	Token string `yaml:"token"`
}

// NavitiaConfig defines the journey-planner integration. Key is optional:
// when empty the live integration is disabled and commute estimates come
// from the static fallback table only.
type NavitiaConfig struct {
	Key         string          `yaml:"key"`
	BaseURL     string          `yaml:"base_url"`
	Coverage    string          `yaml:"coverage"`
	Timeout     time.Duration   `yaml:"timeout"`
	MaxJourneys int             `yaml:"max_journeys"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines journey-planner call rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Enabled reports whether the live journey-planner integration is configured.
func (n *NavitiaConfig) Enabled() bool {
	return n.Key != ""
}

// StoreConfig defines the durable listing log.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	ApplyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, used when no
// config file is given. Every setting has a usable default, so a bare
// `recenseur serve` works out of the box.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in the default value for every unset field.
func ApplyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyAuthDefaults(&cfg.Auth)
	applyNavitiaDefaults(&cfg.Navitia)
	applyStoreDefaults(&cfg.Store)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyAuthDefaults(a *AuthConfig) {
	if a.Token == "" {
		a.Token = DefaultAuthToken
	}
}

func applyNavitiaDefaults(n *NavitiaConfig) {
	if n.BaseURL == "" {
		n.BaseURL = "https://api.navitia.io/v1"
	}
	if n.Coverage == "" {
		n.Coverage = "fr-idf"
	}
	if n.Timeout == 0 {
		n.Timeout = 20 * time.Second
	}
	if n.MaxJourneys == 0 {
		n.MaxJourneys = 3
	}
	if n.RateLimit.PerSecond == 0 {
		n.RateLimit.PerSecond = 5.0
	}
	if n.RateLimit.Burst == 0 {
		n.RateLimit.Burst = 10
	}
}

func applyStoreDefaults(s *StoreConfig) {
	if s.Path == "" {
		s.Path = "recenseur_store.jsonl"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in [1, 65535] (got %d)", cfg.Server.Port))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	if cfg.Navitia.MaxJourneys < 1 {
		errs = append(errs, fmt.Errorf("navitia.max_journeys must be positive (got %d)", cfg.Navitia.MaxJourneys))
	}

	return errors.Join(errs...)
}
