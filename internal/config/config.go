// Package config loads pagectl settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagectl/internal/pagination"
)

// Config file versions this build understands.
const (
	CurrentVersion    = "1.0.0"
	versionConstraint = ">= 1.0.0, < 2.0.0"
)

// Defaults.
const (
	DefaultLatency  = 300 * time.Millisecond
	DefaultLogLevel = "info"
	configFileName  = "config.yaml"
	logFileName     = "pagectl.log"
)

// Environment variables that override file values.
const (
	EnvHome      = "PAGECTL_HOME"
	EnvLogLevel  = "PAGECTL_LOG_LEVEL"
	EnvLogFormat = "PAGECTL_LOG_FORMAT"
)

// Validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidDefaultSize = errors.New("default_page_size must be positive")
	ErrInvalidLatency     = errors.New("latency must be non-negative")
)

// Config is the full pagectl configuration.
type Config struct {
	Version    string           `yaml:"version"`
	Pagination PaginationConfig `yaml:"pagination"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PaginationConfig holds page-size choices for the control.
type PaginationConfig struct {
	PageSizeOptions []int         `yaml:"page_size_options"`
	DefaultPageSize int           `yaml:"default_page_size"`
	Latency         time.Duration `yaml:"latency"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", logFileName)
	}

	return &Config{
		Version: CurrentVersion,
		Pagination: PaginationConfig{
			PageSizeOptions: append([]int(nil), pagination.DefaultPageSizeOptions...),
			DefaultPageSize: pagination.DefaultPageSizeOptions[0],
			Latency:         DefaultLatency,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "console",
			File:   logFile,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if err := pagination.ValidatePageSizeOptions(c.Pagination.PageSizeOptions); err != nil {
		return fmt.Errorf("pagination.page_size_options: %w", err)
	}
	if c.Pagination.DefaultPageSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDefaultSize, c.Pagination.DefaultPageSize)
	}
	if c.Pagination.Latency < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidLatency, c.Pagination.Latency)
	}
	return nil
}

// Save writes c to path as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func checkVersion(raw string) error {
	if raw == "" {
		return nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}
	constraint, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, versionConstraint)
	}
	return nil
}

// DefaultPath returns the config file location under the config directory.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
