// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultServerName is the identity advertised during initialize when the config omits one.
	defaultServerName = "tempus"
	// defaultServerVersion is the version advertised during initialize when the config omits one.
	defaultServerVersion = "0.1.0"
)

// Config represents the top-level application configuration.
type Config struct {
	ServerNameValue    string `json:"serverName,omitempty" mapstructure:"serverName"`
	ServerVersionValue string `json:"serverVersion,omitempty" mapstructure:"serverVersion"`
	Debug              bool   `json:"debug" mapstructure:"debug"`
	StrictArgs         *bool  `json:"strictArgs,omitempty" mapstructure:"strictArgs"`
	LogFile            string `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath         string `json:"-" mapstructure:"-"`
}

// ServerName returns the advertised server name, applying a default if not set.
func (c Config) ServerName() string {
	if name := strings.TrimSpace(c.ServerNameValue); name != "" {
		return name
	}
	return defaultServerName
}

// ServerVersion returns the advertised server version, applying a default if not set.
func (c Config) ServerVersion() string {
	if v := strings.TrimSpace(c.ServerVersionValue); v != "" {
		return v
	}
	return defaultServerVersion
}

// ValidateArgs reports whether tool arguments are checked against their
// declared schema before dispatch. Defaults to true; setting strictArgs to
// false restores the permissive behavior where the schema is advisory and
// only declared defaults are applied.
func (c Config) ValidateArgs() bool {
	if c.StrictArgs == nil {
		return true
	}
	return *c.StrictArgs
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "tempus.log"
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing config file is only an error when a
// path was given explicitly; the server runs fine on defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if explicit {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		config, legacyErr := loadFromPath(legacyConfigPath)
		if legacyErr == nil {
			config.ConfigPath = legacyConfigPath
			return config, nil
		}
		if errors.Is(legacyErr, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
