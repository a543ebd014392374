package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultConfig []byte

// Default returns the built-in configuration written on first run.
func Default() (*Config, error) {
	return Parse(defaultConfig)
}
