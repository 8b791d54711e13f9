package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "codeblog"
	configFile = "config.yaml"

	// CurrentVersion is the only preferences file version understood
	CurrentVersion = 1
)

// Output formats understood by the show command
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists every valid output format
var Formats = []string{FormatDetailed, FormatCompact, FormatJSON, FormatYAML}

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Preferences represents the CLI preferences file.
type Preferences struct {
	Version int    `yaml:"version"`
	Format  string `yaml:"format"` // Default output format for show
	Color   bool   `yaml:"color"`  // Allow colored output on terminals
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version: CurrentVersion,
		Format:  FormatDetailed,
		Color:   true,
	}
}

// ValidateFormat checks that format is one of Formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown output format %q (valid: %v)", format, Formats)
	}
	return nil
}

// GetConfigDir returns the OS-appropriate configuration directory.
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads preferences from the default path.
// A missing file yields the defaults.
func Load() (*Preferences, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads preferences from path.
func LoadFrom(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewPreferences(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	prefs := NewPreferences()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if prefs.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", prefs.Version, CurrentVersion)
	}
	if err := ValidateFormat(prefs.Format); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return prefs, nil
}

// Save writes preferences to the default path.
func (p *Preferences) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return p.SaveTo(path)
}

// SaveTo writes preferences to path atomically.
func (p *Preferences) SaveTo(path string) error {
	if err := ValidateFormat(p.Format); err != nil {
		return err
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	// User-only permissions
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# codeblog-cfg preferences\n# Location: " + path + "\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
