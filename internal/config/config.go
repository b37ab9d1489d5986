// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the config directory.
const AppName = "tasklist-tui"

// Config represents the application configuration.
// Tasks are never stored here; they live only for the session.
type Config struct {
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	ShowHints        bool `yaml:"show_hints"`
	NotifyOnComplete bool `yaml:"notify_on_complete"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file,omitempty"` // defaults to debug.log in the config dir
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ShowHints: true,
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// It does not create the directory; only WriteTemplate and the debug log
// do that.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// Without a usable home directory the defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Template is the commented config file written by --init. Every value in
// it is the default.
const Template = `# tasklist-tui configuration
# Location: ~/.config/tasklist-tui/config.yaml

ui:
  # Show the key hint line under the list (default: true)
  show_hints: true

  # Send a desktop notification when a task is marked done (default: false)
  notify_on_complete: false

log:
  # Write a debug log (default: false)
  debug: false
  # Log file; defaults to debug.log next to this file
  # file: ""
  # level: debug
`

// WriteTemplate writes Template to path, creating its directory.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LogPath returns the debug log location, falling back to the config dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}
