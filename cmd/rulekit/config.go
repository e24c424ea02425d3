package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config holds the settings read from the environment. Flags override them.
type config struct {
	Locale    string     `env:"RULEKIT_LOCALE" envDefault:"en"`
	Catalog   string     `env:"RULEKIT_CATALOG"`
	Separator string     `env:"RULEKIT_SEPARATOR" envDefault:"."`
	LogLevel  slog.Level `env:"RULEKIT_LOG_LEVEL" envDefault:"warn"`
	Format    string     `env:"RULEKIT_FORMAT" envDefault:"text"`
}

// loadConfig loads the given dotenv files (".env" when none are given; a
// missing default file is fine) and parses the environment.
func loadConfig(envFiles ...string) (config, error) {
	var cfg config
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
