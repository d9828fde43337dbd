package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Strategy Builder Configuration

[server]
# Address the API server listens on
listen_addr = ":8080"

[catalog]
# Indicator catalog source: "builtin" or "remote"
source = "builtin"
# Base URL of the remote catalog service (required when source = "remote")
url = ""

[submission]
# Base URL of the strategy persistence service
endpoint = "http://localhost:8080"
# Default submitting user id
user_id = ""

[database]
# Path of the local strategy store (defaults to strategies.db in this directory)
# path = ""

[trading]
# Submit strategies as paper trading unless overridden
paper_default = true
# Default product type: MIS, CNC, NRML
default_product = "NRML"
# Default order type: MARKET, LIMIT, SL, SL-M
default_order_type = "MARKET"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotating file
file = true
`

// createTemplateConfig writes the template config file on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
