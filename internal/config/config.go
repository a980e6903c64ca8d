package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Log     LogConfig
	Catalog CatalogConfig
	Source  SourceConfig
	Receipt ReceiptConfig
}

// AppConfig holds application-wide settings.
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// CatalogConfig maps dropdown list names to their CSV files. Lists
// without a file fall back to the built-in demo options.
type CatalogConfig struct {
	Centers         string
	Groups          string
	CashierBranches string
	LoanBranches    string
}

// SourceConfig tunes the simulated data source.
type SourceConfig struct {
	Latency time.Duration
}

// ReceiptConfig holds workflow switches.
type ReceiptConfig struct {
	RequireGroup bool
	DefaultTotal string
}

// Load reads configuration from the given file (optional) and from
// MF_RECEIPTS_* environment variables, applying defaults for anything
// unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MF_RECEIPTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mf-receipts")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("source.latency", time.Second)
	v.SetDefault("receipt.requiregroup", true)
	v.SetDefault("receipt.defaulttotal", "600000")
}
