package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	FootballDataAPI FootballDataAPI
}

// FootballDataAPI holds the credentials for api.football-data.org. The key
// is optional here; the remote API rejects unauthenticated requests.
type FootballDataAPI struct {
	APIKey string `envconfig:"FOOTBALL_DATA_API_KEY"`
}

// New reads the configuration from the process environment. Any envFiles are
// loaded first with godotenv, which never overrides variables already set.
func New(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
