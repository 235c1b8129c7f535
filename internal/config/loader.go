package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that feed them,
// in priority order. The first non-empty variable wins.
var envBindings = map[string][]string{
	"base.environment":        {"ENVIRONMENT"},
	"server.host":             {"HOST"},
	"server.port":             {"PORT"},
	"log.level":               {"LOG_LEVEL"},
	"log.format":              {"LOG_FORMAT"},
	"log.output":              {"LOG_OUTPUT"},
	"youtube.proxy_username":  {"PROXY_USERNAME", "WEBSHARE_PROXY_USERNAME"},
	"youtube.proxy_password":  {"PROXY_PASSWORD", "WEBSHARE_PROXY_PASSWORD"},
	"youtube.timeout_seconds": {"YOUTUBE_TIMEOUT_SECONDS"},
	"tracing.enabled":         {"TRACING_ENABLED"},
	"tracing.endpoint":        {"TRACING_ENDPOINT"},
	"tracing.insecure":        {"TRACING_INSECURE"},
	"tracing.sample_rate":     {"TRACING_SAMPLE_RATE"},
}

// configSearchPaths are the locations probed for a YAML config file when no
// explicit path is given.
var configSearchPaths = []string{
	"./config.yml",
	"./cmd/transcript-service/config.yml",
}

// LoaderOption customizes Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load builds the service configuration. Precedence, lowest to highest:
// defaults, YAML config file, .env file, process environment.
func Load(opts ...LoaderOption) (*Config, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	envFile := lo.envFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()

	configFile := lo.configFile
	if configFile == "" {
		configFile = findConfigFile()
	}
	// A missing config file is not an error; defaults and the environment
	// are enough to start.
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read config file %s: %w", configFile, err)
			}
		}
	}

	// Explicit sets take viper's highest precedence, so the environment
	// (including values godotenv just loaded) wins over the file.
	for key, envs := range envBindings {
		for _, env := range envs {
			if val, ok := os.LookupEnv(env); ok && val != "" {
				v.Set(key, val)
				break
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile() string {
	for _, path := range configSearchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
