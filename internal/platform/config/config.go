package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"customer-behaviour-dashboard/internal/customers/adapters/csv"
	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr         string
	SourceURL    string
	CachePath    string
	DataFile     string
	DSN          string
	Table        string
	FetchTimeout time.Duration
	LogLevel     string
	Colors       domain.ColorConfig
	ReportDir    string
}

// SourceKind tells which table source the config selects.
type SourceKind string

const (
	SourceSQL    SourceKind = "sql"
	SourceFile   SourceKind = "file"
	SourceRemote SourceKind = "remote"
)

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Load reads an optional .env file (or the given files) and then the process
// environment. Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		}
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, fmt.Errorf("%w: load env files: %v", ErrInvalidConfig, err)
		}
	}

	timeout, err := time.ParseDuration(getenv("FETCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("%w: FETCH_TIMEOUT: %v", ErrInvalidConfig, err)
	}

	defaults := domain.DefaultColors()
	cfg := &Config{
		Addr:         getenv("DASHBOARD_ADDR", ":8080"),
		SourceURL:    getenv("DATA_SOURCE_URL", csv.DefaultSnapshotURL),
		CachePath:    getenv("DATA_CACHE_PATH", "data.csv"),
		DataFile:     getenv("DATA_FILE", ""),
		DSN:          getenv("DATA_SOURCE_DSN", ""),
		Table:        getenv("DATA_SOURCE_TABLE", "customers"),
		FetchTimeout: timeout,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		ReportDir:    getenv("REPORT_DIR", "report"),
		Colors: domain.ColorConfig{
			customers.SelectAll:    getenv("COLOR_ALL", defaults[customers.SelectAll]),
			customers.SelectFemale: getenv("COLOR_FEMALE", defaults[customers.SelectFemale]),
			customers.SelectMale:   getenv("COLOR_MALE", defaults[customers.SelectMale]),
		},
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: DASHBOARD_ADDR is empty", ErrInvalidConfig)
	}
	if c.Source() == SourceRemote && c.SourceURL == "" {
		return fmt.Errorf("%w: one of DATA_SOURCE_DSN, DATA_FILE or DATA_SOURCE_URL is required", ErrInvalidConfig)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: FETCH_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: LOG_LEVEL: unknown level %q", ErrInvalidConfig, c.LogLevel)
	}
	if err := c.Colors.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for sel, col := range c.Colors {
		if !hexColor.MatchString(col) {
			return fmt.Errorf("%w: COLOR_%s: %q is not a hex color", ErrInvalidConfig, strings.ToUpper(string(sel)), col)
		}
	}
	return nil
}

// Source resolves the table source: a DSN wins over a local file, which wins
// over the remote snapshot.
func (c *Config) Source() SourceKind {
	switch {
	case c.DSN != "":
		return SourceSQL
	case c.DataFile != "":
		return SourceFile
	}
	return SourceRemote
}
