package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesTemplateAndDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("template config not created: %v", err)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Catalog.Source != "builtin" {
		t.Errorf("catalog.source = %q", cfg.Catalog.Source)
	}
	if !cfg.Trading.PaperDefault {
		t.Error("paper_default should default to true")
	}
	if cfg.Database.Path != filepath.Join(dir, "strategies.db") {
		t.Errorf("database.path = %q", cfg.Database.Path)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `[server]
listen_addr = ":9090"

[catalog]
source = "remote"
url = "http://catalog.internal:8080"

[trading]
paper_default = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("listen_addr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Catalog.Source != "remote" || cfg.Catalog.URL != "http://catalog.internal:8080" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Trading.PaperDefault {
		t.Error("paper_default not read from file")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BUILDER_CATALOG_URL", "http://override:8080")
	t.Setenv("BUILDER_USER_ID", "u-42")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Source != "remote" {
		t.Error("catalog url override should switch source to remote")
	}
	if cfg.Catalog.URL != "http://override:8080" {
		t.Errorf("catalog.url = %q", cfg.Catalog.URL)
	}
	if cfg.Submission.UserID != "u-42" {
		t.Errorf("submission.user_id = %q", cfg.Submission.UserID)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:     ServerConfig{ListenAddr: ":8080"},
			Catalog:    CatalogConfig{Source: "builtin"},
			Submission: SubmissionConfig{Endpoint: "http://localhost:8080"},
			Logging:    LoggingConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad catalog source", func(c *Config) { c.Catalog.Source = "csv" }, true},
		{"remote without url", func(c *Config) { c.Catalog.Source = "remote" }, true},
		{"empty listen addr", func(c *Config) { c.Server.ListenAddr = "" }, true},
		{"empty endpoint", func(c *Config) { c.Submission.Endpoint = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
