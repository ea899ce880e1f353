package config

import (
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Records  []RecordConfig `yaml:"records"`
}

// ServerConfig holds the listener configuration
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// UpstreamConfig holds the upstream resolver configuration
type UpstreamConfig struct {
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"`
}

// StorageConfig holds the local override-record store configuration
type StorageConfig struct {
	Type      string `yaml:"type"` // "none", "memory", "surrealdb"
	DSN       string `yaml:"dsn"`
	Namespace string `yaml:"namespace"`
	Database  string `yaml:"database"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "console"
	Output string `yaml:"output"` // "stdout", "stderr", or file path
}

// RecordConfig is a static override record seeded into the store at startup.
// Data is the hex-encoded record payload, passed through opaquely.
type RecordConfig struct {
	Name  string `yaml:"name"`
	Type  uint16 `yaml:"type"`
	Class uint16 `yaml:"class"`
	TTL   uint32 `yaml:"ttl"`
	Data  string `yaml:"data"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:      "0.0.0.0:2053",
			ReadTimeout:  0,
			WriteTimeout: 5 * time.Second,
		},
		Upstream: UpstreamConfig{
			Address: "8.8.8.8:53",
			Timeout: 5 * time.Second,
		},
		Storage: StorageConfig{
			Type: "none",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// LoadFromFile loads configuration from a YAML file layered over the defaults
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if _, _, err := net.SplitHostPort(c.Server.Address); err != nil {
		return fmt.Errorf("invalid server address %q: %w", c.Server.Address, err)
	}

	if c.Upstream.Address == "" {
		return fmt.Errorf("upstream address cannot be empty")
	}
	if _, _, err := net.SplitHostPort(c.Upstream.Address); err != nil {
		return fmt.Errorf("invalid upstream address %q: %w", c.Upstream.Address, err)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %v", c.Upstream.Timeout)
	}

	switch c.Storage.Type {
	case "none", "memory":
	case "surrealdb":
		if c.Storage.DSN == "" {
			return fmt.Errorf("surrealdb storage requires a dsn")
		}
	default:
		return fmt.Errorf("invalid storage type: %s", c.Storage.Type)
	}

	if c.Storage.Type == "none" && len(c.Records) > 0 {
		return fmt.Errorf("static records configured but storage type is none")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	for i, record := range c.Records {
		if record.Name == "" {
			return fmt.Errorf("record %d: name cannot be empty", i)
		}
		if _, err := hex.DecodeString(record.Data); err != nil {
			return fmt.Errorf("record %d (%s): data is not valid hex: %w", i, record.Name, err)
		}
	}

	return nil
}
