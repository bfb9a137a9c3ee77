// Package config loads the savings configuration file and env overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "savings"

// Environment variables that override the config file.
const (
	EnvBackend  = "SAVINGS_BACKEND"
	EnvDataPath = "SAVINGS_DATA_PATH"
)

// Config holds all savings configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Forecast   ForecastConfig   `toml:"forecast"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds report preferences.
type GeneralConfig struct {
	ProjectionMonths int    `toml:"projection_months"`
	RecentLimit      int    `toml:"recent_limit"`
	Currency         string `toml:"currency"`
}

// StorageConfig selects where the data lives.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// ForecastConfig tunes the goal forecast.
type ForecastConfig struct {
	AssumedMonthlySavings int64 `toml:"assumed_monthly_savings"`
}

// AppearanceConfig holds theme settings. An empty theme follows the stored
// light/dark setting.
type AppearanceConfig struct {
	Theme string `toml:"theme,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ProjectionMonths: 3,
			RecentLimit:      15,
			Currency:         "¥",
		},
		Storage: StorageConfig{
			Backend: "json",
		},
		Forecast: ForecastConfig{
			AssumedMonthlySavings: 30000,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// Load reads the .env file and config file, returning defaults if neither
// exists. Environment variables take precedence over the file.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if err := LoadEnvFile(filepath.Join(ConfigDir(), ".env")); err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(ConfigPath())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	ApplyEnv(&cfg)
	return cfg, cfg.Validate()
}

// LoadEnvFile loads KEY=value pairs from path into the environment without
// replacing variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides storage settings from the environment.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDataPath)); v != "" {
		cfg.Storage.Path = v
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q: must be one of [json sqlite]", c.Storage.Backend)
	}
	if c.General.ProjectionMonths < 1 || c.General.ProjectionMonths > 24 {
		return fmt.Errorf("projection_months %d out of range 1-24", c.General.ProjectionMonths)
	}
	if c.General.RecentLimit < 1 {
		return fmt.Errorf("recent_limit must be positive, got %d", c.General.RecentLimit)
	}
	if c.Forecast.AssumedMonthlySavings < 0 {
		return fmt.Errorf("assumed_monthly_savings cannot be negative")
	}
	return nil
}

// DataPath returns the data file location for the configured backend.
func (c Config) DataPath(defaultName string) string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataDir(), defaultName)
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
