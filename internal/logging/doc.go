// Package logging provides structured logging for the codeblog tools.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is passed to Initialize or set through the
// CODEBLOG_LOG_LEVEL environment variable, so CLI output stays clean.
//
// # Log Levels
//
//   - Debug: Detailed debugging info (resolved formats, lookups)
//   - Info: Normal operations (command start, preferences loaded)
//   - Warn: Non-fatal issues (invalid fields, unreadable preferences)
//   - Error: Fatal issues
//
// # Structured Logging
//
//	logging.Info("Preferences loaded",
//	    zap.String("path", path),
//	    zap.String("format", prefs.Format),
//	)
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
