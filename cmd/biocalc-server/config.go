package main

import (
	"flag"
	"os"
)

// Flags are the command-line settings; any value left empty falls back
// to the config file and then the built-in defaults.
type Flags struct {
	ConfigPath       string
	Addr             string
	WorkbookPath     string
	CoefficientsPath string
	DatabasePath     string
	DevMode          bool
}

func parseFlags() *Flags {
	f := &Flags{}

	flag.StringVar(&f.ConfigPath, "config", envOr("BIOCALC_CONFIG", ""), "Path to TOML config file")
	flag.StringVar(&f.Addr, "listen", "", "Address to listen on (overrides config)")
	flag.StringVar(&f.WorkbookPath, "workbook", envOr("BIOCALC_WORKBOOK", ""), "Path to the factors workbook (overrides config)")
	flag.StringVar(&f.CoefficientsPath, "coefficients", envOr("BIOCALC_COEFFICIENTS", ""), "Path to YAML coefficient overrides (overrides config)")
	flag.StringVar(&f.DatabasePath, "db", "", "Path to the history database (overrides config)")
	flag.BoolVar(&f.DevMode, "dev", false, "Run in development mode")

	flag.Parse()
	return f
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
