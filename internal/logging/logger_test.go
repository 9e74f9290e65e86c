package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetForTest() {
	CloseAll()
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
	logLevel = LevelInfo
}

func TestInitializeWithoutConfigIsSilent(t *testing.T) {
	defer resetForTest()
	ws := t.TempDir()

	if err := Initialize(ws); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if IsDebugMode() {
		t.Fatalf("expected production mode with no config")
	}

	Boot("this should go nowhere")
	if _, err := os.Stat(filepath.Join(ws, ".quickreport", "logs")); !os.IsNotExist(err) {
		t.Fatalf("logs directory should not exist in production mode")
	}
}

func TestInitializeDebugModeWritesFiles(t *testing.T) {
	defer resetForTest()
	ws := t.TempDir()

	dir := filepath.Join(ws, ".quickreport")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := `{"logging":{"debug_mode":true,"level":"debug"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := Initialize(ws); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if !IsDebugMode() {
		t.Fatalf("expected debug mode")
	}

	StoreError("snapshot write failed: %v", os.ErrPermission)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	found := false
	for _, e := range entries {
		data, _ := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		if len(data) > 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one non-empty log file")
	}
}

func TestSessionAndReportHelpersWriteTheirCategories(t *testing.T) {
	defer resetForTest()
	ws := t.TempDir()

	dir := filepath.Join(ws, ".quickreport")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := `{"logging":{"debug_mode":true,"level":"debug"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := Initialize(ws); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	Session("action report.UpdateItem")
	Report("1 campaigns, 3 catalog products")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	var hasSession, hasReport bool
	for _, e := range entries {
		data, _ := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
		if len(data) == 0 {
			continue
		}
		if strings.Contains(e.Name(), string(CategorySession)) {
			hasSession = true
		}
		if strings.Contains(e.Name(), string(CategoryReport)) {
			hasReport = true
		}
	}
	if !hasSession {
		t.Errorf("session category file missing or empty")
	}
	if !hasReport {
		t.Errorf("report category file missing or empty")
	}
}

func TestCategoryFilter(t *testing.T) {
	defer resetForTest()
	ws := t.TempDir()

	dir := filepath.Join(ws, ".quickreport")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := `{"logging":{"debug_mode":true,"categories":{"clipboard":false}}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := Initialize(ws); err != nil {
		t.Fatalf("initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryClipboard) {
		t.Fatalf("clipboard category should be disabled")
	}
	if !IsCategoryEnabled(CategoryStore) {
		t.Fatalf("store category should default to enabled")
	}
}
