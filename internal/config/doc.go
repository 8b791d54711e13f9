// Package config manages user preferences for the codeblog-cfg CLI.
//
// Preferences are stored as YAML in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/codeblog/config.yaml or $HOME/.config/codeblog/config.yaml
//   - macOS: $HOME/.config/codeblog/config.yaml
//   - Windows: %LOCALAPPDATA%\codeblog\config.yaml
//
// The site records themselves are compiled in (see package siteconfig) and
// are never read from or written to this file.
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	prefs.Format = config.FormatCompact
//	if err := prefs.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Writes are serialized by a package mutex and are atomic (temp file + rename).
package config
