package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings, read from FUTSTATS_* environment
// variables with command-line flags taking precedence.
type Config struct {
	Addr     string `env:"FUTSTATS_ADDR" envDefault:":8090"`
	DBPath   string `env:"FUTSTATS_DB" envDefault:"futstats.db"`
	LogLevel string `env:"FUTSTATS_LOG_LEVEL" envDefault:"info"`
	HTTPLog  bool   `env:"FUTSTATS_HTTP_LOG" envDefault:"false"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
