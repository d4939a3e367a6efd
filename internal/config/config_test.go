package config

import "testing"

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultLevel != "basic" {
		t.Fatalf("DefaultLevel = %q, want basic", cfg.General.DefaultLevel)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultLevel = "level2"
	cfg.General.DataDir = "/tmp/unitlog-test"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultLevel != "level2" {
		t.Fatalf("DefaultLevel = %q, want level2", got.General.DefaultLevel)
	}
	if got.General.DataDir != "/tmp/unitlog-test" {
		t.Fatalf("DataDir = %q", got.General.DataDir)
	}
	if got.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", got.Appearance.Theme)
	}
}

func TestDataDirFallsBackToDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != "/tmp/xdg-data/unitlog" {
		t.Fatalf("DataDir = %q, want /tmp/xdg-data/unitlog", got)
	}

	cfg.General.DataDir = "/var/lib/unitlog"
	if got := DataDir(cfg); got != "/var/lib/unitlog" {
		t.Fatalf("DataDir = %q, want explicit /var/lib/unitlog", got)
	}
}
