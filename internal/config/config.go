package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/quizshell/internal/question"
)

// Config holds settings read from the environment. Command-line flags take
// priority over these values.
type Config struct {
	// AssessmentFile is the assessment definition to run. Empty means the
	// built-in sample.
	AssessmentFile string `env:"QUIZSHELL_FILE"`

	// LogFile receives structured logs. Empty disables logging, since the
	// terminal UI owns stdout and stderr.
	LogFile string `env:"QUIZSHELL_LOG"`

	LogLevel string `env:"QUIZSHELL_LOG_LEVEL" envDefault:"info"`

	// Aggregation selects how response states combine into a question
	// state: "positional" or "severity".
	Aggregation string `env:"QUIZSHELL_AGGREGATION" envDefault:"positional"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Policy returns the configured aggregation policy.
func (c Config) Policy() (question.Policy, error) {
	return question.ParsePolicy(c.Aggregation)
}
