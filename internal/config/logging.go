package config

import (
	"github.com/rshade/pagectl/internal/logging"
)

// ToLoggingConfig converts the file settings into a logging.Config.
// When toFile is false or no file is configured, output goes to stderr.
func (lc LoggingConfig) ToLoggingConfig(toFile bool) logging.Config {
	output := logging.OutputStderr
	if toFile && lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging settings. Flag overrides
// such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
