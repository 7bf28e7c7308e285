package config

import (
	"errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrInvalidCapacity = errors.New("HT_CAPACITY has to be a positive integer")
	ErrInvalidFill     = errors.New("HT_FILL must not be negative")
	ErrInvalidResizes  = errors.New("HT_RESIZES must not be negative")
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"development"`
	Capacity    int    `default:"2"`
	Fill        int    `default:"0"`
	Resizes     int    `default:"1"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("ht", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks whether the configured values are usable
func (config *Config) Validate() error {
	if config.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if config.Fill < 0 {
		return ErrInvalidFill
	}
	if config.Resizes < 0 {
		return ErrInvalidResizes
	}
	return nil
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "production"
}
