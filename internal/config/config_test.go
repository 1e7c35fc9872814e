package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagectl/internal/logging"
	"github.com/rshade/pagectl/internal/pagination"
)

// TestNew_Defaults checks the built-in configuration values.
func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/pagectl-home")

	cfg := New()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, []int{10, 25, 50, 100}, cfg.Pagination.PageSizeOptions)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, DefaultLatency, cfg.Pagination.Latency)
	assert.Equal(t, "/tmp/pagectl-home/logs/pagectl.log", cfg.Logging.File)
	require.NoError(t, cfg.Validate())
}

// TestNew_DoesNotAliasDefaults ensures New copies the default page-size options.
func TestNew_DoesNotAliasDefaults(t *testing.T) {
	cfg := New()
	cfg.Pagination.PageSizeOptions[0] = 7
	assert.Equal(t, 10, pagination.DefaultPageSizeOptions[0])
}

// TestLoad verifies a config file overrides the defaults.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `version: 1.2.0
pagination:
  page_size_options: [5, 20]
  default_page_size: 20
  latency: 50ms
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []int{5, 20}, cfg.Pagination.PageSizeOptions)
	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50*time.Millisecond, cfg.Pagination.Latency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

// TestLoad_MissingFileUsesDefaults verifies a missing file is not an error.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultPageSizeOptions, cfg.Pagination.PageSizeOptions)
}

// TestLoad_InvalidYAML verifies malformed YAML is reported.
func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

// TestLoad_EnvOverrides verifies environment variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// TestValidate covers config validation failures.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "empty version allowed", mutate: func(c *Config) { c.Version = "" }},
		{name: "future major", mutate: func(c *Config) { c.Version = "2.0.0" }, wantErr: ErrUnsupportedVersion},
		{name: "garbage version", mutate: func(c *Config) { c.Version = "latest" }, wantErr: ErrUnsupportedVersion},
		{name: "empty options", mutate: func(c *Config) { c.Pagination.PageSizeOptions = nil }, wantErr: pagination.ErrEmptyPageSizes},
		{name: "zero option", mutate: func(c *Config) { c.Pagination.PageSizeOptions = []int{0} }, wantErr: pagination.ErrInvalidPageSizeOption},
		{name: "zero default", mutate: func(c *Config) { c.Pagination.DefaultPageSize = 0 }, wantErr: ErrInvalidDefaultSize},
		{name: "default outside options is allowed", mutate: func(c *Config) { c.Pagination.DefaultPageSize = 7 }},
		{name: "negative latency", mutate: func(c *Config) { c.Pagination.Latency = -time.Second }, wantErr: ErrInvalidLatency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestSaveLoadRoundTrip verifies a saved config loads back unchanged.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := New()
	cfg.Pagination.PageSizeOptions = []int{15, 30}
	cfg.Pagination.Latency = 2 * time.Second

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 30}, loaded.Pagination.PageSizeOptions)
	assert.Equal(t, 2*time.Second, loaded.Pagination.Latency)
}

// TestGlobalConfig exercises the global config accessors.
func TestGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)
	ResetGlobalConfigForTest()

	assert.Equal(t, pagination.DefaultPageSizeOptions, GetPageSizeOptions())
	assert.Equal(t, 10, GetDefaultPageSize())

	cfg := New()
	cfg.Pagination.PageSizeOptions = []int{3}
	cfg.Pagination.DefaultPageSize = 3
	SetGlobalConfig(cfg)

	assert.Equal(t, []int{3}, GetPageSizeOptions())
	assert.Equal(t, 3, GetDefaultPageSize())
}

// TestGetConfigDir verifies PAGECTL_HOME sets the config directory and file.
func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvHome, "/opt/pagectl")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/pagectl", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/opt/pagectl/config.yaml", path)
}

// TestEnsureLogDir verifies the log directory is created.
func TestEnsureLogDir(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	dir := t.TempDir()
	cfg := New()
	cfg.Logging.File = filepath.Join(dir, "a", "b", "pagectl.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestLoggingConfig_ToLoggingConfig verifies the bridge to logging.Config.
func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json", File: "/tmp/x.log"}

	assert.Equal(t, logging.OutputFile, lc.ToLoggingConfig(true).Output)
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig(false).Output)
	assert.Equal(t, logging.OutputStderr, LoggingConfig{}.ToLoggingConfig(true).Output)
	assert.Equal(t, "debug", lc.ToLoggingConfig(true).Level)
}
