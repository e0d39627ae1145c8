package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Storage backend identifiers accepted in StorageConfig.Backend.
const (
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

// StorageConfig selects and locates the local persistence backend.
type StorageConfig struct {
	// Backend is one of "memory", "file", or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the data directory for the file backend or the database
	// file for the sqlite backend.
	Path string `mapstructure:"path" yaml:"path"`

	// Seed controls whether stores that load with no prior state are
	// populated with the built-in demo data.
	Seed bool `mapstructure:"seed" yaml:"seed"`
}

// RemoteConfig holds settings for the optional remote persistence and
// auth provider.
type RemoteConfig struct {
	// Enabled controls whether the remote provider is used at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// BaseURL is the root URL of the provider.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// APIKey is the project API key sent with every request. The
	// per-user session token is kept in the system keyring, not here.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Remote  RemoteConfig  `mapstructure:"remote" yaml:"remote"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/teampulse/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "teampulse", "config.yaml")
}

// DefaultDataDir returns the default directory for locally persisted
// store documents.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "data")
	}
	return filepath.Join(home, ".local", "share", "teampulse")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Backend: StorageBackendFile,
			Path:    DefaultDataDir(),
			Seed:    true,
		},
		Remote: RemoteConfig{
			Enabled: false,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("storage.backend", StorageBackendFile)
	v.SetDefault("storage.path", DefaultDataDir())
	v.SetDefault("storage.seed", true)
	v.SetDefault("remote.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Storage.Backend {
	case StorageBackendMemory, StorageBackendFile, StorageBackendSQLite:
	default:
		return nil, fmt.Errorf(
			"invalid storage backend %q in %s", cfg.Storage.Backend, path,
		)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("remote", cfg.Remote)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
