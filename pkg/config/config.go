// Package config loads tool-level configuration for anvil. Settings come
// from built-in defaults, an optional user config file and ANVIL_*
// environment variables, in that precedence order (later wins).
package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete tool-level configuration. Project-level
// settings live in the project file and are out of scope here.
type Config struct {
	CLI CLIConfig `koanf:"cli"`
}

// CLIConfig contains settings for the command-line surface.
type CLIConfig struct {
	LogLevel     string `koanf:"log_level"     validate:"omitempty,oneof=debug info warn error" env:"CLI_LOG_LEVEL"`
	LogJSON      bool   `koanf:"log_json"      env:"CLI_LOG_JSON"`
	LogSource    bool   `koanf:"log_source"    env:"CLI_LOG_SOURCE"`
	Debug        bool   `koanf:"debug"         env:"CLI_DEBUG"`
	ProfilesPath string `koanf:"profiles_path" env:"CLI_PROFILES_PATH"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		CLI: CLIConfig{
			LogLevel:     "info",
			LogJSON:      false,
			LogSource:    false,
			Debug:        false,
			ProfilesPath: defaultProfilesPath(),
		},
	}
}

// DefaultConfigPath returns the location of the optional user config
// file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".anvil", "config.yaml")
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".anvil", "profiles.yaml")
}
