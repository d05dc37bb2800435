// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the report tooling.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development" validate:"oneof=development staging production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// TopN is the default number of matrix rows shown.
	TopN int `envconfig:"REPORT_TOP_N" default:"10" validate:"min=1,max=1000"`

	// DateLayouts overrides the accepted document date layouts (comma separated).
	DateLayouts []string `envconfig:"REPORT_DATE_LAYOUTS"`

	// DataFile is an optional JSON fixture loaded into the in-memory source.
	DataFile string `envconfig:"REPORT_DATA_FILE"`
}

// LoadConfig reads configuration from environment variables and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}
