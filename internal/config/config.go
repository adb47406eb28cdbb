// Package config loads runtime configuration from a .env file and the
// process environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the commands read from the environment.
type Config struct {
	// Token is the GitHub bearer token. Required by fetch.
	Token string
	// Endpoint overrides the GraphQL endpoint; empty means api.github.com.
	Endpoint string
}

// Load reads the optional .env file, then the environment.
func Load(logger *logrus.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}
	return &Config{
		Token:    os.Getenv("GITHUB_TOKEN"),
		Endpoint: os.Getenv("GITHUB_GRAPHQL_ENDPOINT"),
	}
}
