package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// appConfig holds the effective CLI settings after overlaying the config
// file onto flag values.
type appConfig struct {
	Out    string
	Strict bool
	Legacy bool
}

// fileConfig is the TOML shape of a doldoc config file.
type fileConfig struct {
	Strict bool   `toml:"strict"`
	Legacy bool   `toml:"legacy_revision"`
	Out    string `toml:"extract_dir"`
}

// loadConfig overlays values from a TOML file onto cfg. Only keys that
// are present in the file are applied, and a key never overrides a flag
// that was set explicitly on the command line.
func loadConfig(path string, cfg appConfig, flagSet map[string]bool) (appConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("strict") && !flagSet["strict"] {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("legacy_revision") && !flagSet["legacy"] {
		cfg.Legacy = raw.Legacy
	}
	if meta.IsDefined("extract_dir") && !flagSet["out"] {
		cfg.Out = strings.TrimSpace(raw.Out)
	}
	return cfg, nil
}
