package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the web and terminal commands.
type Config struct {
	// Addr is the listen address of the web command.
	Addr string `yaml:"addr"`
	// MaxRank is the highest card rank; 13 deals a standard game.
	MaxRank int `yaml:"max_rank"`
	// Seed shuffles the deal; 0 means derive one from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:    ":8080",
		MaxRank: 13,
		Seed:    0,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MaxRank < 1 {
		return cfg, fmt.Errorf("max_rank must be at least 1, got %d", cfg.MaxRank)
	}
	return cfg, nil
}
