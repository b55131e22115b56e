package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CDN_DB_PATH")
	os.Unsetenv("HTTP_ADDR")
	os.Unsetenv("CDN_EXPORT_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DBPath == "" {
		t.Error("DBPath should not be empty")
	}
	if filepath.Base(cfg.DBPath) != "cdn-manager.db" {
		t.Errorf("Expected default db file cdn-manager.db, got %s", cfg.DBPath)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.ExportPath != "cdn_export.json" {
		t.Errorf("Expected default export path cdn_export.json, got %s", cfg.ExportPath)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("CDN_DB_PATH", "/tmp/test-cdn.db")
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("CDN_DB_PATH")
		os.Unsetenv("HTTP_ADDR")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DBPath != "/tmp/test-cdn.db" {
		t.Errorf("Expected custom DB path, got %s", cfg.DBPath)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("Expected :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug, got %s", cfg.LogLevel)
	}
}

func TestLoadFromINI(t *testing.T) {
	iniContent := `[db]
path = /tmp/ini-cdn.db

[http]
addr = :7070

[export]
path = /tmp/out.json
`
	iniPath := filepath.Join(t.TempDir(), "cdn.ini")
	if err := os.WriteFile(iniPath, []byte(iniContent), 0o644); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}

	os.Unsetenv("CDN_DB_PATH")
	os.Unsetenv("CDN_EXPORT_PATH")

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.DBPath != "/tmp/ini-cdn.db" {
		t.Errorf("Expected INI db path, got %s", cfg.DBPath)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Errorf("Expected INI addr :7070, got %s", cfg.HTTPAddr)
	}
}

func TestLoadFromINI_EnvOverridesINI(t *testing.T) {
	iniContent := "[http]\naddr = :7070\n"
	iniPath := filepath.Join(t.TempDir(), "cdn.ini")
	if err := os.WriteFile(iniPath, []byte(iniContent), 0o644); err != nil {
		t.Fatalf("failed to write INI file: %v", err)
	}

	os.Setenv("HTTP_ADDR", ":6060")
	defer os.Unsetenv("HTTP_ADDR")

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.HTTPAddr != ":6060" {
		t.Errorf("Environment should override INI, got %s", cfg.HTTPAddr)
	}
}

func TestLoadFromINI_MissingFile(t *testing.T) {
	_, err := LoadFromINI(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	if err == nil {
		t.Error("Expected error for missing INI file")
	}
}
