package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chtmp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chtmp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.Logging.DebugMode {
		t.Error("DebugMode should default to false")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := chtmp(t)

	cfg := DefaultConfig()
	cfg.UserName = "Hoàng Anh Tùng"
	cfg.Theme = "dark"
	cfg.Logging.DebugMode = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".quickreport", "config.json")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.UserName != cfg.UserName || loaded.Theme != cfg.Theme || !loaded.Logging.DebugMode {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	dir := chtmp(t)

	confDir := filepath.Join(dir, ".quickreport")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("expected an error for corrupt config")
	}
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want default", cfg.Theme)
	}
}
