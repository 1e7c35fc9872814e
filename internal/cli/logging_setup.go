package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagectl/internal/config"
	"github.com/rshade/pagectl/internal/logging"
)

// fileLoggingAnnotation marks commands whose output must not be interleaved
// with log lines, such as the full-screen browser.
const fileLoggingAnnotation = "pagectl/log-to-file"

// setupLogging configures logging from config, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	toFile := cmd.Annotations[fileLoggingAnnotation] == "true"
	if toFile {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig(toFile))
	switch {
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	case result.UsingFile:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx, sessionLogger := logging.WithSession(cmd.Context(), result.Logger)
	logger = logging.ComponentLogger(sessionLogger, "cli")
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Debug().Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
