package config

import (
	"os"
	"path/filepath"
	"testing"

	"tierlist/internal/provider"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(configDirEnvKey, "")
	t.Setenv(dbPathEnvKey, "")
	t.Setenv(variantEnvKey, "")
	t.Setenv(maxBytesEnvKey, "")
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("expected log level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Provider.Variant != string(provider.VariantLocal) {
		t.Fatalf("expected local variant, got %q", cfg.Provider.Variant)
	}
	if cfg.Provider.Local.Medium != provider.MediumSQLite {
		t.Fatalf("expected sqlite medium, got %q", cfg.Provider.Local.Medium)
	}
	if cfg.Provider.Local.MaxBytes != provider.DefaultMaxBytes {
		t.Fatalf("expected default quota, got %d", cfg.Provider.Local.MaxBytes)
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(configDirEnvKey, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("expected defaults, got log level %q", cfg.LogLevel)
	}
	if cfg.Provider.Local.Path == "" {
		t.Fatal("expected a default db path to be filled in")
	}
	if filepath.Base(cfg.Provider.Local.Path) != DefaultDBFileName {
		t.Fatalf("expected db file %q, got %q", DefaultDBFileName, cfg.Provider.Local.Path)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(configDirEnvKey, dir)
	writeConfigFile(t, dir, `
log_level = "debug"

[provider]
variant = "local"

[provider.local]
medium = "file"
path = "/tmp/tierlist-data"
max_bytes = 1024
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Provider.Local.Medium != "file" {
		t.Fatalf("expected file medium, got %q", cfg.Provider.Local.Medium)
	}
	if cfg.Provider.Local.Path != "/tmp/tierlist-data" {
		t.Fatalf("unexpected path %q", cfg.Provider.Local.Path)
	}
	if cfg.Provider.Local.MaxBytes != 1024 {
		t.Fatalf("expected quota 1024, got %d", cfg.Provider.Local.MaxBytes)
	}
	// Keys the file omits keep their defaults.
	if cfg.Provider.Local.StorageKey != provider.DefaultStorageKey {
		t.Fatalf("expected default storage key, got %q", cfg.Provider.Local.StorageKey)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(configDirEnvKey, dir)
	writeConfigFile(t, dir, `
[provider.local]
path = "/tmp/from-file"
max_bytes = 1024
`)
	t.Setenv(dbPathEnvKey, "/tmp/from-env")
	t.Setenv(variantEnvKey, "remote")
	t.Setenv(maxBytesEnvKey, "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.Local.Path != "/tmp/from-env" {
		t.Fatalf("expected env path, got %q", cfg.Provider.Local.Path)
	}
	if cfg.Provider.Variant != "remote" {
		t.Fatalf("expected env variant, got %q", cfg.Provider.Variant)
	}
	if cfg.Provider.Local.MaxBytes != 2048 {
		t.Fatalf("expected env quota, got %d", cfg.Provider.Local.MaxBytes)
	}
}

func TestLoadRejectsBadMaxBytes(t *testing.T) {
	clearEnv(t)
	t.Setenv(configDirEnvKey, t.TempDir())

	for _, raw := range []string{"abc", "-1", "0"} {
		t.Setenv(maxBytesEnvKey, raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for %s=%q", maxBytesEnvKey, raw)
		}
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(configDirEnvKey, dir)
	writeConfigFile(t, dir, "log_level = [this is not toml")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathPrefersConfigDirEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(configDirEnvKey, dir)

	path, err := Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if path != filepath.Join(dir, configFileName) {
		t.Fatalf("unexpected config path %q", path)
	}
}

func TestToProvider(t *testing.T) {
	cfg := Default()
	cfg.Provider.Local.Path = "/tmp/db"
	cfg.Provider.Remote.BaseURL = "https://example.test"

	pc := cfg.ToProvider()
	if pc.Variant != provider.VariantLocal {
		t.Fatalf("unexpected variant %q", pc.Variant)
	}
	if pc.Local.Path != "/tmp/db" || pc.Local.Medium != provider.MediumSQLite {
		t.Fatalf("unexpected local options %+v", pc.Local)
	}
	if pc.Remote.BaseURL != "https://example.test" {
		t.Fatalf("unexpected remote options %+v", pc.Remote)
	}
}
