// Package config reads runtime settings from DIRQUEST_* environment
// variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-tunable setting. All fields have working
// defaults so a bare invocation needs no setup.
type Config struct {
	// Dir is where the save file lives. Defaults to ~/.dirquest.
	Dir string `env:"DIRQUEST_DIR"`

	// Seed fixes the randomizer for reproducible runs. 0 means random.
	Seed int64 `env:"DIRQUEST_SEED"`

	// Plain disables color output.
	Plain bool `env:"DIRQUEST_PLAIN"`

	// Hardcore makes death wipe tombstones and quest progress.
	Hardcore bool `env:"DIRQUEST_HARDCORE"`

	// World points at a custom Lua world file. Empty uses the embedded one.
	World string `env:"DIRQUEST_WORLD"`
}

// Load parses the environment into a Config, filling in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.Dir = filepath.Join(home, ".dirquest")
	}
	return cfg, nil
}

// SavePath returns the location of the game save file.
func (c Config) SavePath() string {
	return filepath.Join(c.Dir, "game.json")
}
