// Package config loads service settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordlelab/internal/game"
)

// Config holds every environment-driven setting.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// WordsFile optionally overrides the embedded word lists (YAML or text).
	WordsFile     string `env:"WORDS_FILE"`
	DefaultLength int    `env:"DEFAULT_WORD_LENGTH" envDefault:"5"`
	StrictGuesses bool   `env:"STRICT_GUESSES" envDefault:"false"`
	DailySalt     string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepInterval  time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Production reports whether cookies should be marked Secure.
func (c Config) Production() bool { return c.AppEnv == "production" }

// Load reads the given .env files (default ".env"; missing files are skipped)
// and parses the environment into a Config. Variables already set in the
// environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the type system can't.
func (c Config) Validate() error {
	if !game.SupportsLength(c.DefaultLength) {
		return fmt.Errorf("DEFAULT_WORD_LENGTH %d: %w", c.DefaultLength, game.ErrUnsupportedLength)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}
