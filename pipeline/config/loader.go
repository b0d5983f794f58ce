package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted as API key fallbacks, optionally loaded
// from a .env file in the working directory.
const (
	EnvAppKey  = "ACOUSTID_APPLICATION_API_KEY"
	EnvUserKey = "ACOUSTID_USER_API_KEY"
)

// LoadConfig loads and validates configuration from a YAML file, filling
// missing API keys from the environment.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Configuration file not found: %s", path),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Error reading configuration file: %v", err),
		}
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Error parsing YAML file: %v", err),
		}
	}

	config.SetDefaults()
	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig builds a configuration without a file: defaults plus
// environment-sourced API keys. Validation is left to the caller, who may
// still apply command-line overrides first.
func DefaultConfig() *Config {
	var config Config
	config.SetDefaults()
	config.ApplyEnv()
	return &config
}

// ApplyEnv fills empty API keys from the environment, loading a .env file
// first when one exists. Explicit configuration always wins over the
// environment.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if c.AcoustID.AppKey == "" {
		c.AcoustID.AppKey = os.Getenv(EnvAppKey)
	}
	if c.AcoustID.UserKey == "" {
		c.AcoustID.UserKey = os.Getenv(EnvUserKey)
	}
}
