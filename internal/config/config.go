// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "JIRADASH"

// Config holds all configuration parameters for the application.
type Config struct {
	DataDir string
	Log     LogConfig
	Storage StorageConfig
	Delays  DelayConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
	// File also writes logs to a daily file under <data_dir>/logs.
	File bool
}

// StorageConfig selects where the session is persisted.
type StorageConfig struct {
	Backend string
}

// DelayConfig holds the simulated latency of each remote call.
type DelayConfig struct {
	Login    time.Duration
	Projects time.Duration
	Assigned time.Duration
	Reported time.Duration
}

// Options control where configuration is read from.
type Options struct {
	// File is an optional config file (yaml, toml or json).
	File string
	// Overrides are applied last, e.g. values of command line flags.
	Overrides map[string]any
}

// LoadConfig reads configuration from defaults, an optional file,
// JIRADASH_* environment variables and overrides, in that order.
func LoadConfig(opts Options) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// LOG_LEVEL is honoured as well, the logging package reads it at startup
	v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.File, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	config := &Config{
		DataDir: v.GetString("data_dir"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
			File:   v.GetBool("log.file"),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(v.GetString("storage.backend")),
		},
		Delays: DelayConfig{
			Login:    v.GetDuration("delays.login"),
			Projects: v.GetDuration("delays.projects"),
			Assigned: v.GetDuration("delays.assigned"),
			Reported: v.GetDuration("delays.reported"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", false)
	v.SetDefault("storage.backend", "badger")
	v.SetDefault("delays.login", time.Second)
	v.SetDefault("delays.projects", time.Second)
	v.SetDefault("delays.assigned", 1500*time.Millisecond)
	v.SetDefault("delays.reported", 1200*time.Millisecond)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jiradash"
	}
	return filepath.Join(home, ".jiradash")
}

// validateConfig ensures that all configuration values are usable.
func validateConfig(config *Config) error {
	var problems []string

	switch config.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format must be text or json, got %q", config.Log.Format))
	}

	switch config.Storage.Backend {
	case "badger":
		if config.DataDir == "" {
			problems = append(problems, "data_dir is required for the badger backend")
		}
	case "memory":
		if config.Log.File && config.DataDir == "" {
			problems = append(problems, "data_dir is required when log.file is set")
		}
	default:
		problems = append(problems, fmt.Sprintf("storage.backend must be badger or memory, got %q", config.Storage.Backend))
	}

	delays := map[string]time.Duration{
		"delays.login":    config.Delays.Login,
		"delays.projects": config.Delays.Projects,
		"delays.assigned": config.Delays.Assigned,
		"delays.reported": config.Delays.Reported,
	}
	for _, name := range []string{"delays.login", "delays.projects", "delays.assigned", "delays.reported"} {
		if delays[name] < 0 {
			problems = append(problems, name+" must not be negative")
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}

	return nil
}
