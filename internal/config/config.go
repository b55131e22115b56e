package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration
type Config struct {
	// DBPath is the sqlite database file
	DBPath string
	// HTTPAddr is the listen address for the serve subcommand
	HTTPAddr string
	// ExportPath is the default output file for the export subcommand
	ExportPath string
	// LogLevel is a logrus level name (debug, info, warn, error)
	LogLevel string
}

// DefaultDBPath returns the database location under the user's home
// directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// last resort: relative to the working directory
		return filepath.Join(".blackroad", "cdn-manager.db")
	}
	return filepath.Join(home, ".blackroad", "cdn-manager.db")
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:     getEnv("CDN_DB_PATH", DefaultDBPath()),
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		ExportPath: getEnv("CDN_EXPORT_PATH", "cdn_export.json"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// LoadFromINI loads configuration from INI file with environment variable override
func LoadFromINI(iniPath string) (*Config, error) {
	cfgFile, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load INI file: %w", err)
	}

	// Priority: ENV > INI > default
	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		DBPath:     getValue("CDN_DB_PATH", "db", "path", DefaultDBPath()),
		HTTPAddr:   getValue("HTTP_ADDR", "http", "addr", ":8080"),
		ExportPath: getValue("CDN_EXPORT_PATH", "export", "path", "cdn_export.json"),
		LogLevel:   getValue("LOG_LEVEL", "log", "level", "info"),
	}

	return cfg, nil
}
