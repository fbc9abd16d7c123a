// Package config loads kellyd service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all kellyd configuration.
//
// The env/envDefault struct tags are documentation-only: they record each
// field's variable name and default in one place, but Load reads the
// environment through the getEnv helpers below and never parses them.
type Config struct {
	Port        int     `env:"KELLYD_PORT" envDefault:"8090"`
	BisectTol   float64 `env:"KELLYD_BISECT_TOL" envDefault:"1e-8"`
	NewtonTol   float64 `env:"KELLYD_NEWTON_TOL" envDefault:"1e-10"`
	MaxIter     int     `env:"KELLYD_MAX_ITER" envDefault:"1000"`
	SimRounds   int     `env:"KELLYD_SIM_ROUNDS" envDefault:"1000"`
	SimBankroll float64 `env:"KELLYD_SIM_BANKROLL" envDefault:"1000"`
	LogLevel    string  `env:"LOG_LEVEL" envDefault:"info"`
}

// Load initializes configuration from environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	cfg.Port = getEnvIntWithDefault("KELLYD_PORT", 8090)
	cfg.BisectTol = getEnvFloatWithDefault("KELLYD_BISECT_TOL", 1e-8)
	cfg.NewtonTol = getEnvFloatWithDefault("KELLYD_NEWTON_TOL", 1e-10)
	cfg.MaxIter = getEnvIntWithDefault("KELLYD_MAX_ITER", 1000)
	cfg.SimRounds = getEnvIntWithDefault("KELLYD_SIM_ROUNDS", 1000)
	cfg.SimBankroll = getEnvFloatWithDefault("KELLYD_SIM_BANKROLL", 1000)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
