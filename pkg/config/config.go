package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-storefront-admin/components/dashboard"
	"github.com/goliatone/go-storefront-admin/components/dashboard/i18n"
)

// EnvPrefix namespaces every variable read by Parse.
const EnvPrefix = "DASHBOARD_"

// Config holds the process settings of the storefront admin.
type Config struct {
	Addr              string        `env:"ADDR"                envDefault:":9876"`
	BasePath          string        `env:"BASE_PATH"           envDefault:"/admin"`
	DefaultLanguage   string        `env:"DEFAULT_LANGUAGE"    envDefault:"pt"`
	DefaultTheme      string        `env:"DEFAULT_THEME"       envDefault:"system"`
	PageSize          int           `env:"PAGE_SIZE"           envDefault:"10"`
	ChartCacheTTL     time.Duration `env:"CHART_CACHE_TTL"     envDefault:"5m"`
	EChartsAssetsHost string        `env:"ECHARTS_ASSETS_HOST"`
	SeedFile          string        `env:"SEED_FILE"`
	LogMode           string        `env:"LOG_MODE"            envDefault:"development"`
	LogLevel          string        `env:"LOG_LEVEL"           envDefault:"info"`
}

// Load reads the optional dotenv files, then parses the process environment.
// Missing files are skipped; variables already set win over file values.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return Parse(nil)
}

// Parse reads configuration from environ, or from the process environment when environ is nil.
func Parse(environ map[string]string) (Config, error) {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values outside their closed sets.
func (c Config) Validate() error {
	if _, ok := i18n.ParseLanguage(c.DefaultLanguage); !ok {
		return fmt.Errorf("config: unsupported default language %q", c.DefaultLanguage)
	}
	if _, ok := dashboard.ParseThemeMode(c.DefaultTheme); !ok {
		return fmt.Errorf("config: unsupported default theme %q", c.DefaultTheme)
	}
	switch strings.ToLower(c.LogMode) {
	case "development", "production":
	default:
		return fmt.Errorf("config: unsupported log mode %q", c.LogMode)
	}
	if c.PageSize <= 0 || c.PageSize > dashboard.MaxPageSize {
		return fmt.Errorf("config: page size must be between 1 and %d", dashboard.MaxPageSize)
	}
	if c.ChartCacheTTL < 0 {
		return fmt.Errorf("config: chart cache ttl must not be negative")
	}
	return nil
}

// StateDefaults returns the language and theme used when a request names neither.
func (c Config) StateDefaults() dashboard.StateDefaults {
	lang, _ := i18n.ParseLanguage(c.DefaultLanguage)
	theme, _ := dashboard.ParseThemeMode(c.DefaultTheme)
	return dashboard.StateDefaults{Language: lang, Theme: theme}
}
