// SPDX-License-Identifier: MIT

// Package config loads decolab settings from defaults, a YAML file,
// DECOLAB_* environment variables and command flags, in rising priority.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DECOLAB_MODEL_GF_LOW.
const EnvPrefix = "DECOLAB"

// Config represents the complete decolab configuration
type Config struct {
	Model   ModelConfig   `mapstructure:"model"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

// ModelConfig controls the decompression model
type ModelConfig struct {
	// Variant selects the ZH-L16 a-coefficients: "A", "B" or "C"
	Variant string `mapstructure:"variant"`
	// StepSeconds is the integration grid spacing (default: 10)
	StepSeconds float64 `mapstructure:"step_seconds"`
	// GFLow and GFHigh are used when a dive setup does not carry its own
	GFLow  float64 `mapstructure:"gf_low"`
	GFHigh float64 `mapstructure:"gf_high"`
	// StopIncrement is the spacing of decompression stops in metres (default: 3)
	StopIncrement float64 `mapstructure:"stop_increment"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	// Format is "table" or "json"
	Format string `mapstructure:"format"`
}

// LoggingConfig controls diagnostics
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	// Addr is the listen address (default: ":8080")
	Addr string `mapstructure:"addr"`
	// MaxBodyBytes caps request bodies (default: 1 MiB)
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Variant:       "C",
			StepSeconds:   10,
			GFLow:         0.3,
			GFHigh:        0.85,
			StopIncrement: 3,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("model.variant", defaults.Model.Variant)
	v.SetDefault("model.step_seconds", defaults.Model.StepSeconds)
	v.SetDefault("model.gf_low", defaults.Model.GFLow)
	v.SetDefault("model.gf_high", defaults.Model.GFHigh)
	v.SetDefault("model.stop_increment", defaults.Model.StopIncrement)

	v.SetDefault("output.format", defaults.Output.Format)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.max_body_bytes", defaults.Server.MaxBodyBytes)
}

// Setup prepares v: defaults, env overrides and config file discovery.
// cfgFile, when set, is used instead of the search path. A missing config
// file is not an error.
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// e.g., DECOLAB_MODEL_GF_LOW for model.gf_low
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// Load unmarshals v into a Config
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "decolab")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "decolab")
}
