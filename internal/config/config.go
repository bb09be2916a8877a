// Package config loads the era configuration: defaults, then a YAML file,
// then ERA_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"eratracker/internal/engine"
	"eratracker/internal/storage"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Tracker TrackerConfig `yaml:"tracker"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Driver  string `yaml:"driver" env:"ERA_STORAGE_DRIVER"` // sqlite, postgres, memory
	Path    string `yaml:"path" env:"ERA_DB_PATH"`
	DSN     string `yaml:"dsn,omitempty" env:"ERA_POSTGRES_DSN"`
	Key     string `yaml:"key" env:"ERA_STATE_KEY"`
	History int    `yaml:"history" env:"ERA_HISTORY"` // revisions kept per key; 0 keeps none
}

type TrackerConfig struct {
	GemTarget int    `yaml:"gem_target" env:"ERA_GEM_TARGET"`
	Timezone  string `yaml:"timezone" env:"ERA_TZ"` // IANA name or "Local"
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"ERA_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"ERA_LOG_FORMAT"` // json, text
	File   string `yaml:"file,omitempty" env:"ERA_LOG_FILE"`
}

var ValidDrivers = []string{storage.DriverSQLite, storage.DriverPostgres, storage.DriverMemory}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:  storage.DriverSQLite,
			Path:    "~/.era.db",
			Key:     engine.DefaultStateKey,
			History: storage.DefaultHistory,
		},
		Tracker: TrackerConfig{
			GemTarget: engine.DefaultGemTarget,
			Timezone:  "Local",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath is ~/.config/era/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "era", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if !slices.Contains(ValidDrivers, c.Storage.Driver) {
		return fmt.Errorf("invalid storage driver: %q (valid: %v)", c.Storage.Driver, ValidDrivers)
	}
	if c.Tracker.GemTarget < 1 {
		return fmt.Errorf("gem_target must be at least 1, got %d", c.Tracker.GemTarget)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "text", "":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	return nil
}

// Location resolves the configured time zone. Empty and "Local" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Tracker.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Tracker.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Tracker.Timezone, err)
	}
	return loc, nil
}

// StorageOptions maps the storage section onto storage.Options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:  c.Storage.Driver,
		Path:    c.Storage.Path,
		DSN:     c.Storage.DSN,
		History: c.Storage.History,
	}
}
