// Package config loads server configuration from the environment.
// Command-line flags override the parsed values in main.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	DBPath  string `env:"ZEROWASTE_DB" envDefault:"zerowaste.sqlite3"`
	Addr    string `env:"ZEROWASTE_ADDR" envDefault:":8080"`
	LogPath string `env:"ZEROWASTE_LOG"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
