// Package config loads imflux settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MaxFPS bounds server.fps so that a frame interval is at least a millisecond.
const MaxFPS = 1000

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all imflux configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the browser surface.
type ServerConfig struct {
	Addr  string `yaml:"addr"`
	FPS   int    `yaml:"fps"`   // frames per second of the session render loop
	Title string `yaml:"title"` // document title
	// Header selects the navigation layout: app or classic.
	Header string `yaml:"header"`
}

// StoreConfig seeds the state container.
type StoreConfig struct {
	InitialCounter int `yaml:"initial_counter"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:   ":4040",
			FPS:    20,
			Title:  "REACT MAKER",
			Header: "app",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.FPS <= 0 || c.Server.FPS > MaxFPS {
		return fmt.Errorf("%w: server.fps must be in 1..%d, got %d", ErrInvalid, MaxFPS, c.Server.FPS)
	}
	switch c.Server.Header {
	case "", "app", "classic":
	default:
		return fmt.Errorf("%w: unknown server.header %q", ErrInvalid, c.Server.Header)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if addr := os.Getenv("IMFLUX_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("IMFLUX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("IMFLUX_INITIAL_COUNTER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: IMFLUX_INITIAL_COUNTER: %v", ErrInvalid, err)
		}
		c.Store.InitialCounter = n
	}
	return nil
}
