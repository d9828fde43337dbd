// Package config provides configuration management for the strategy
// builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Submission SubmissionConfig `mapstructure:"submission"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Trading    TradingConfig    `mapstructure:"trading"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds API server configuration.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// CatalogConfig holds indicator catalog configuration.
type CatalogConfig struct {
	// Source is "builtin" or "remote".
	Source string `mapstructure:"source"`
	// URL is the base URL of the remote catalog service.
	URL string `mapstructure:"url"`
}

// SubmissionConfig holds the submission boundary configuration.
type SubmissionConfig struct {
	// Endpoint is the base URL of the persistence service.
	Endpoint string `mapstructure:"endpoint"`
	// UserID is the default submitting user.
	UserID string `mapstructure:"user_id"`
}

// DatabaseConfig holds the local strategy store configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// TradingConfig holds trading-related defaults.
type TradingConfig struct {
	// PaperDefault marks submissions as paper trading unless overridden.
	PaperDefault bool `mapstructure:"paper_default"`
	// DefaultProduct: MIS, CNC, NRML
	DefaultProduct string `mapstructure:"default_product"`
	// DefaultOrderType: MARKET, LIMIT, SL, SL-M
	DefaultOrderType string `mapstructure:"default_order_type"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/strategy-builder"
	}
	return filepath.Join(home, ".config", "strategy-builder")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is
// replaced with a template on first run.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("catalog.source", "builtin")
	v.SetDefault("catalog.url", "")
	v.SetDefault("submission.endpoint", "http://localhost:8080")
	v.SetDefault("submission.user_id", "")
	v.SetDefault("database.path", filepath.Join(configDir, "strategies.db"))
	v.SetDefault("trading.paper_default", true)
	v.SetDefault("trading.default_product", "NRML")
	v.SetDefault("trading.default_order_type", "MARKET")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUILDER_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("BUILDER_CATALOG_URL"); v != "" {
		cfg.Catalog.Source = "remote"
		cfg.Catalog.URL = v
	}
	if v := os.Getenv("BUILDER_SUBMISSION_ENDPOINT"); v != "" {
		cfg.Submission.Endpoint = v
	}
	if v := os.Getenv("BUILDER_USER_ID"); v != "" {
		cfg.Submission.UserID = v
	}
	if v := os.Getenv("BUILDER_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog.Source != "builtin" && c.Catalog.Source != "remote" {
		return fmt.Errorf("catalog.source must be \"builtin\" or \"remote\", got %q", c.Catalog.Source)
	}
	if c.Catalog.Source == "remote" && c.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required when catalog.source is \"remote\"")
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	if c.Submission.Endpoint == "" {
		return fmt.Errorf("submission.endpoint must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
