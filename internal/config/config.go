// Package config assembles the service configuration from an optional YAML
// file, an optional .env file, and environment variables. The result is
// constructed once at startup and treated as immutable afterwards.
package config

import (
	"fmt"

	"github.com/skillsenselab/yt-transcript-service/internal/logger"
	"github.com/skillsenselab/yt-transcript-service/internal/observability"
	"github.com/skillsenselab/yt-transcript-service/internal/server"
	"github.com/skillsenselab/yt-transcript-service/internal/youtube"
)

// BaseConfig contains the service identity fields.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "yt-transcript-service"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return nil
		}
	}
	return fmt.Errorf("base.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// Config is the full service configuration.
type Config struct {
	Base    BaseConfig           `yaml:"base" mapstructure:"base"`
	Server  server.Config        `yaml:"server" mapstructure:"server"`
	Log     logger.Config        `yaml:"log" mapstructure:"log"`
	YouTube youtube.Config       `yaml:"youtube" mapstructure:"youtube"`
	Tracing observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Log.ApplyDefaults()
	c.YouTube.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.YouTube.Validate()
}
