package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.HoursPerDay != 8 {
		t.Errorf("HoursPerDay = %v, want 8", cfg.General.HoursPerDay)
	}
	if cfg.General.CurrencyUnit != "₹" {
		t.Errorf("CurrencyUnit = %q, want ₹", cfg.General.CurrencyUnit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.HoursPerDay = 7.5
	cfg.General.CurrencyUnit = ""
	cfg.Firm.Name = "Sharma & Co"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.HoursPerDay != 7.5 {
		t.Errorf("HoursPerDay = %v, want 7.5", got.General.HoursPerDay)
	}
	if got.General.CurrencyUnit != "₹" {
		t.Errorf("empty CurrencyUnit not defaulted: %q", got.General.CurrencyUnit)
	}
	if got.Firm.Name != "Sharma & Co" {
		t.Errorf("Firm.Name = %q", got.Firm.Name)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "auditdesk") {
		t.Errorf("DataDir = %q", got)
	}

	cfg.General.DataDir = "/srv/audit"
	if got := DataDir(cfg); got != "/srv/audit" {
		t.Errorf("DataDir override = %q", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/srv/audit", "auditdesk.db") {
		t.Errorf("DBPath = %q", got)
	}
	if got := BackupsDir(cfg); got != filepath.Join("/srv/audit", "backups") {
		t.Errorf("BackupsDir = %q", got)
	}
}
