package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Intent extraction
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIModel       string        `env:"OPENAI_MODEL"       envDefault:"gpt-4o-mini"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	ExtractionTimeout time.Duration `env:"EXTRACTION_TIMEOUT" envDefault:"30s"`

	// Roster (optional - leave empty for the built-in roster)
	RosterFile string `env:"ROSTER_FILE" envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"60s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
