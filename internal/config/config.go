package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// maxPrecision caps the decimal places a result is rendered with.
const maxPrecision = 12

// Config holds runtime configuration for a conv invocation.
// Values are populated from .conv.yaml, CONV_* env vars, and CLI flags.
type Config struct {
	Precision int    `mapstructure:"precision"`
	Color     bool   `mapstructure:"color"`
	Prompt    string `mapstructure:"prompt"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("precision", 4)
	viper.SetDefault("color", true)
	viper.SetDefault("prompt", "conv> ")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Precision < 0 {
		cfg.Precision = 0
	}
	if cfg.Precision > maxPrecision {
		cfg.Precision = maxPrecision
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "conv> "
	}
	return cfg, nil
}
