// SPDX-License-Identifier: MIT

// Package config reads gaussmix settings from GAUSSMIX_* environment
// variables.
//
//	GAUSSMIX_STORE_FORMAT       json | yaml | toml   (json)
//	GAUSSMIX_STORE_COMPRESSION  none | gzip | zstd   (none)
//	GAUSSMIX_LOG_LEVEL          debug | info | warn | error (info)
//	GAUSSMIX_LOG_DEV            console output when true (false)
//	GAUSSMIX_LOG_OUTPUT         comma-separated zap sinks (stderr)
package config

import (
	"fmt"

	"github.com/katalvlaran/gaussmix/logging"
	"github.com/katalvlaran/gaussmix/store"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "gaussmix"

// Config holds all gaussmix configuration.
type Config struct {
	Store   StoreConfig
	Logging LogConfig `envconfig:"LOG"`
}

// StoreConfig selects how models and statistics are persisted.
type StoreConfig struct {
	Format      string `envconfig:"FORMAT" default:"json"`
	Compression string `envconfig:"COMPRESSION" default:"none"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string   `envconfig:"LEVEL" default:"info"`
	Development bool     `envconfig:"DEV" default:"false"`
	Output      []string `envconfig:"OUTPUT" default:"stderr"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.Store.Options(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault is Load falling back to Default on any error.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Format:      store.JSON.String(),
			Compression: store.NoCompression.String(),
		},
		Logging: LogConfig{
			Level:  "info",
			Output: []string{"stderr"},
		},
	}
}

// Options translates the store settings into store options.
func (c StoreConfig) Options() ([]store.Option, error) {
	format, err := store.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	compression, err := store.ParseCompression(c.Compression)
	if err != nil {
		return nil, err
	}

	return []store.Option{store.WithFormat(format), store.WithCompression(compression)}, nil
}

// LoggingConfig converts c for logging.New.
func (c LogConfig) LoggingConfig() logging.Config {
	return logging.Config{
		Level:       c.Level,
		Development: c.Development,
		OutputPaths: append([]string(nil), c.Output...),
	}
}
