// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/searchit/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Backend  BackendConfig  `yaml:"backend"`
	Search   SearchConfig   `yaml:"search"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// BackendConfig defines the search backend and location service.
type BackendConfig struct {
	BaseURL     string          `yaml:"base_url"`
	LocationURL string          `yaml:"location_url"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines backend rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 disables the cap
}

// SearchConfig defines search form defaults.
type SearchConfig struct {
	DefaultZipcode  string `yaml:"default_zipcode"`
	DefaultCategory string `yaml:"default_category"`
}

// ScheduleConfig defines cron intervals. An unset or zero interval takes
// the default; a negative interval disables the job.
type ScheduleConfig struct {
	WishListRefreshInterval time.Duration `yaml:"wishlist_refresh_interval"`
	LocationRefreshInterval time.Duration `yaml:"location_refresh_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

var zipcodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyBackendDefaults(&cfg.Backend)
	applySearchDefaults(&cfg.Search)
	applyScheduleDefaults(&cfg.Schedule)
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

func applyBackendDefaults(b *BackendConfig) {
	if b.LocationURL == "" {
		b.LocationURL = "http://ip-api.com/json"
	}
	if b.Timeout == 0 {
		b.Timeout = 15 * time.Second
	}
	if b.RateLimit.PerSecond == 0 {
		b.RateLimit.PerSecond = 5.0
	}
	if b.RateLimit.Burst == 0 {
		b.RateLimit.Burst = 10
	}
}

func applySearchDefaults(s *SearchConfig) {
	if s.DefaultZipcode == "" {
		s.DefaultZipcode = domain.DefaultZipcode
	}
	if s.DefaultCategory == "" {
		s.DefaultCategory = string(domain.CategoryAll)
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.WishListRefreshInterval == 0 {
		s.WishListRefreshInterval = 5 * time.Minute
	}
	if s.LocationRefreshInterval == 0 {
		s.LocationRefreshInterval = time.Hour
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
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	if cfg.Backend.BaseURL == "" {
		errs = append(errs, errors.New("backend.base_url is required"))
	} else if err := validateURL(cfg.Backend.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("backend.base_url: %w", err))
	}
	if err := validateURL(cfg.Backend.LocationURL); err != nil {
		errs = append(errs, fmt.Errorf("backend.location_url: %w", err))
	}
	if cfg.Backend.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("backend.rate_limit.per_second must not be negative"))
	}
	if cfg.Backend.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("backend.rate_limit.burst must be at least 1"))
	}

	if !zipcodePattern.MatchString(cfg.Search.DefaultZipcode) {
		errs = append(errs, fmt.Errorf("search.default_zipcode must be five digits (got %q)", cfg.Search.DefaultZipcode))
	}
	if !slices.Contains(domain.Categories(), domain.Category(cfg.Search.DefaultCategory)) {
		errs = append(errs, fmt.Errorf("search.default_category %q is not a known category", cfg.Search.DefaultCategory))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
