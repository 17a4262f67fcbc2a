// Package config loads the service configuration from an optional
// TOML file, with sane defaults for local use.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the top-level service configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr    string `toml:"addr"`
	DevMode bool   `toml:"dev_mode"`
}

// DataConfig holds the paths and addresses of the backing data: the
// factors workbook, the coefficient overrides file, and the history
// database.
type DataConfig struct {
	WorkbookPath     string `toml:"workbook_path"`
	FactorsSheet     string `toml:"factors_sheet"`
	FactorsRange     string `toml:"factors_range"`
	OptionsSheet     string `toml:"options_sheet"`
	CoefficientsPath string `toml:"coefficients_path"`
	DatabasePath     string `toml:"database_path"`
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Data: DataConfig{
			FactorsSheet: "Fatores",
			FactorsRange: "B2:D40",
			OptionsSheet: "Opcoes",
			DatabasePath: "biocalc.db",
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path
// returns Default() unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
