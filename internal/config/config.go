package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"tierlist/internal/provider"
)

const (
	DefaultLogLevel   = "warn"
	DefaultDBFileName = ".tierlist.db"

	configFileName = ".tierlist.toml"

	configDirEnvKey = "TIERLIST_CONFIG_DIR"
	dbPathEnvKey    = "TIERLIST_DB"
	variantEnvKey   = "TIERLIST_PROVIDER"
	maxBytesEnvKey  = "TIERLIST_MAX_BYTES"
)

// LocalConfig configures the local provider variant.
type LocalConfig struct {
	Medium     string `toml:"medium"`
	Path       string `toml:"path"`
	StorageKey string `toml:"storage_key"`
	VersionKey string `toml:"version_key"`
	MaxBytes   int64  `toml:"max_bytes"`
}

// RemoteConfig configures the remote provider variant.
type RemoteConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// ProviderConfig selects the persistence backend.
type ProviderConfig struct {
	Variant string       `toml:"variant"`
	Local   LocalConfig  `toml:"local"`
	Remote  RemoteConfig `toml:"remote"`
}

// Config defines runtime configuration for tierlist.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Provider ProviderConfig `toml:"provider"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Provider: ProviderConfig{
			Variant: string(provider.VariantLocal),
			Local: LocalConfig{
				Medium:     provider.MediumSQLite,
				StorageKey: provider.DefaultStorageKey,
				VersionKey: provider.DefaultVersionKey,
				MaxBytes:   provider.DefaultMaxBytes,
			},
		},
	}
}

// Load reads configuration from the config file (if present) and applies
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := loadFileIfExists(path, &cfg); err != nil {
		return nil, err
	}

	if dbPath := os.Getenv(dbPathEnvKey); dbPath != "" {
		cfg.Provider.Local.Path = dbPath
	}
	if variant := os.Getenv(variantEnvKey); variant != "" {
		cfg.Provider.Variant = variant
	}
	if raw := strings.TrimSpace(os.Getenv(maxBytesEnvKey)); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", maxBytesEnvKey, raw)
		}
		cfg.Provider.Local.MaxBytes = parsed
	}

	if cfg.Provider.Local.Path == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfg.Provider.Local.Path = filepath.Join(cwd, DefaultDBFileName)
		}
	}

	return &cfg, nil
}

// Path returns the config file path: the TIERLIST_CONFIG_DIR override when
// set, otherwise the user's home directory.
func Path() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(configDirEnvKey)); dir != "" {
		return filepath.Join(dir, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// ToProvider maps the configuration onto a provider factory config.
func (c *Config) ToProvider() provider.Config {
	return provider.Config{
		Variant: provider.Variant(c.Provider.Variant),
		Local: provider.LocalOptions{
			Medium:     c.Provider.Local.Medium,
			Path:       c.Provider.Local.Path,
			StorageKey: c.Provider.Local.StorageKey,
			VersionKey: c.Provider.Local.VersionKey,
			MaxBytes:   c.Provider.Local.MaxBytes,
		},
		Remote: provider.RemoteOptions{
			BaseURL:   c.Provider.Remote.BaseURL,
			APIKey:    c.Provider.Remote.APIKey,
			TimeoutMS: c.Provider.Remote.TimeoutMS,
		},
	}
}

func loadFileIfExists(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}
