package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is parsed from the environment. Defaults give a playable game
// with no variables set.
type Config struct {
	// DataDir is where the history document lives; created on first run.
	DataDir string `env:"BLACKJACK_DATA_DIR" envDefault:"media"`

	// BetMenu is the fixed menu of bet sizes offered to the player.
	BetMenu []int `env:"BLACKJACK_BET_MENU" envDefault:"5,25,50"`

	// Debug enables verbose logging.
	Debug bool `env:"BLACKJACK_DEBUG" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
