// Package config loads and saves the auditdesk configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all auditdesk configuration.
type Config struct {
	General Conventions `toml:"general"`
	Firm    FirmConfig  `toml:"firm"`
}

// Conventions holds working conventions used by reports and scheduling.
// CurrencyUnit is the symbol prefixed to monetary amounts.
type Conventions struct {
	HoursPerDay  float64 `toml:"hours_per_day"`
	CurrencyUnit string  `toml:"currency_unit"`
	DataDir      string  `toml:"data_dir,omitempty"`
}

// FirmConfig holds firm identity details shown on report headers.
type FirmConfig struct {
	Name    string `toml:"name,omitempty"`
	Partner string `toml:"partner,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: Conventions{
			HoursPerDay:  8,
			CurrencyUnit: "₹",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "auditdesk")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "auditdesk")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the database and backups. The
// config file can override the XDG default.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "auditdesk")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "auditdesk")
}

// DBPath returns the full path to the SQLite database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "auditdesk.db")
}

// BackupsDir returns the directory holding backups.
func BackupsDir(cfg Config) string {
	return filepath.Join(DataDir(cfg), "backups")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.HoursPerDay <= 0 {
		cfg.General.HoursPerDay = 8
	}
	if cfg.General.CurrencyUnit == "" {
		cfg.General.CurrencyUnit = "₹"
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
