package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
)

var keys = []string{
	"DASHBOARD_ADDR", "DATA_SOURCE_URL", "DATA_CACHE_PATH", "DATA_FILE", "DATA_SOURCE_DSN",
	"DATA_SOURCE_TABLE", "FETCH_TIMEOUT", "LOG_LEVEL", "COLOR_ALL", "COLOR_FEMALE", "COLOR_MALE", "REPORT_DIR",
}

// clearEnv blanks every key for the test; getenv treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.CachePath != "data.csv" || cfg.Table != "customers" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.Colors[customers.SelectAll] != "#00CC96" {
		t.Fatalf("unexpected All color %q", cfg.Colors[customers.SelectAll])
	}
	if cfg.Source() != SourceRemote {
		t.Fatalf("expected remote source, got %s", cfg.Source())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "DATA_FILE=/tmp/customers.csv\nCOLOR_MALE=#336699\nFETCH_TIMEOUT=5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv does not override variables that are already set.
	os.Unsetenv("DATA_FILE")
	os.Unsetenv("COLOR_MALE")
	os.Unsetenv("FETCH_TIMEOUT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataFile != "/tmp/customers.csv" || cfg.Source() != SourceFile {
		t.Fatalf("expected file source, got %+v", cfg)
	}
	if cfg.Colors[customers.SelectMale] != "#336699" {
		t.Fatalf("unexpected male color %q", cfg.Colors[customers.SelectMale])
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.FetchTimeout)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "soon")
	t.Chdir(t.TempDir())

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSource_Precedence(t *testing.T) {
	cfg := &Config{DSN: "sqlite://x.db", DataFile: "a.csv", SourceURL: "http://x"}
	if cfg.Source() != SourceSQL {
		t.Fatalf("expected sql to win, got %s", cfg.Source())
	}
	cfg.DSN = ""
	if cfg.Source() != SourceFile {
		t.Fatalf("expected file to win, got %s", cfg.Source())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Addr:         ":8080",
			SourceURL:    "http://example.com/data.csv",
			FetchTimeout: time.Second,
			LogLevel:     "info",
			Colors: map[customers.Selector]string{
				customers.SelectAll:    "#00CC96",
				customers.SelectFemale: "#000001",
				customers.SelectMale:   "#000002",
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"no source", func(c *Config) { c.SourceURL = "" }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"missing color", func(c *Config) { delete(c.Colors, customers.SelectFemale) }},
		{"bad color", func(c *Config) { c.Colors[customers.SelectMale] = "blue" }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
