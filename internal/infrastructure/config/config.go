package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob the API process reads from the environment.
// A .env file, when present, is loaded by the caller before parsing.
type Config struct {
	Port             string `env:"PORT" envDefault:"5000"`
	DatabaseURL      string `env:"DB_URL,required"`
	RedisURL         string `env:"REDIS_URL,required"`
	JWTSecret        string `env:"JWT_SECRET,required"`
	MediaUploadURL   string `env:"MEDIA_UPLOAD_URL"`
	AsynqConcurrency int    `env:"ASYNQ_CONCURRENCY" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
