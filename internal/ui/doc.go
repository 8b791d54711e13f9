// Package ui provides terminal output components for the codeblog-cfg CLI.
//
// Components follow a "render once and print" pattern: they return styled
// strings and never take over the terminal.
//
//   - Header: boxed banner with a title, command line and ordered fields
//   - Result: success/failure boxes used by the validate command
//
// Color output is enabled only when stdout is a terminal. Call DisableColor
// to force plain output (for pipes or the --no-color flag).
//
// # Logging Integration
//
// Logging is controlled via the CODEBLOG_LOG_LEVEL environment variable.
// When unset, zap logging is silent so the styled output prints cleanly.
package ui
