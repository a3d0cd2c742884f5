// Package config loads the cram configuration from
// ~/.config/cram/config.toml with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Export  ExportConfig  `toml:"export"`
}

type StorageConfig struct {
	// DBPath is the SQLite file holding courses, preferences and the plan.
	DBPath string `toml:"db_path"`
}

type ExportConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Dir:    "outputs",
			Format: "csv",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cram"), nil
}

func ConfigPath() (string, error) {
	if v := os.Getenv("CRAM_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. CRAM_DB overrides the configured database path either way.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath, err = defaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CRAM_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("CRAM_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
}

func defaultDBPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cram.db"), nil
}
