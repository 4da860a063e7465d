package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"
)

// ServiceConfig holds the configuration for the service. The database
// DSN and the upstream PokeAPI base URL are externalized here rather
// than hardcoded.
type ServiceConfig struct {
	ServiceName    string        `yaml:"service_name" validate:"required"`
	LogLevel       string        `yaml:"loglevel" validate:"required"`
	Host           string        `yaml:"host" validate:"required"`
	Port           string        `yaml:"port" validate:"required"`
	PrivateKeyPath string        `yaml:"private_key_path" validate:"required"`
	Database       Database      `yaml:"database" validate:"required"`
	PokeAPI        PokeAPIConfig `yaml:"pokeapi" validate:"required"`
}

type Database struct {
	Type string `yaml:"type" validate:"required,oneof=postgres mongo"`
	// Seed controls whether the fixed seed users are inserted at startup.
	Seed     bool           `yaml:"seed"`
	MongoDB  MongoDBConfig  `yaml:"mongodb_config" validate:"omitempty"`
	Postgres PostgresConfig `yaml:"postgres_config" validate:"omitempty"`
}

type MongoDBConfig struct {
	DSN         string `yaml:"dsn"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

type PostgresConfig struct {
	DSN                 string `yaml:"dsn"`
	MaxOpenConns        int    `yaml:"max_open_conns"`
	MaxIdleConns        int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSecs int    `yaml:"conn_max_lifetime_secs"`
}

// PokeAPIConfig points the gateway at the upstream Pokémon API.
type PokeAPIConfig struct {
	BaseURL     string `yaml:"base_url" validate:"required,url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// Timeout returns the configured MongoDB connect timeout.
func (c MongoDBConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ConnMaxLifetime returns the configured connection lifetime.
func (c PostgresConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeSecs) * time.Second
}

// Timeout returns the configured upstream request timeout.
func (c PokeAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ReadLocalConfig reads the service configuration from a YAML file at the
// specified path and unmarshals it into a ServiceConfig.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
