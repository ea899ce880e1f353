package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading from multiple sources: defaults first,
// then a YAML file when one exists, then environment variable overrides.
type Loader struct {
	configPaths []string
	envPrefix   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: []string{
			"./dnsrelay.yaml",
		},
		envPrefix: "DNSRELAY_",
	}
}

// SetConfigPaths sets the configuration file search paths
func (l *Loader) SetConfigPaths(paths []string) {
	l.configPaths = paths
}

// AddConfigPath adds a configuration file search path
func (l *Loader) AddConfigPath(path string) {
	l.configPaths = append(l.configPaths, path)
}

// Load loads configuration from all available sources
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if err := l.loadFromFile(config); err != nil {
		return nil, fmt.Errorf("failed to load config from file: %w", err)
	}

	l.loadFromEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile attempts to load configuration from the first existing search
// path; no file at all falls back to the defaults.
func (l *Loader) loadFromFile(config *Config) error {
	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return nil
	}

	return nil
}

// loadFromEnv loads configuration overrides from environment variables
func (l *Loader) loadFromEnv(config *Config) {
	if addr := os.Getenv(l.envPrefix + "SERVER_ADDRESS"); addr != "" {
		config.Server.Address = addr
	}
	if timeout := os.Getenv(l.envPrefix + "SERVER_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.ReadTimeout = d
		}
	}
	if timeout := os.Getenv(l.envPrefix + "SERVER_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.WriteTimeout = d
		}
	}

	if addr := os.Getenv(l.envPrefix + "UPSTREAM_ADDRESS"); addr != "" {
		config.Upstream.Address = addr
	}
	if timeout := os.Getenv(l.envPrefix + "UPSTREAM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Upstream.Timeout = d
		}
	}

	if storageType := os.Getenv(l.envPrefix + "STORAGE_TYPE"); storageType != "" {
		config.Storage.Type = storageType
	}
	if dsn := os.Getenv(l.envPrefix + "STORAGE_DSN"); dsn != "" {
		config.Storage.DSN = dsn
	}

	if level := os.Getenv(l.envPrefix + "LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv(l.envPrefix + "LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv(l.envPrefix + "LOG_OUTPUT"); output != "" {
		config.Logging.Output = output
	}
}
