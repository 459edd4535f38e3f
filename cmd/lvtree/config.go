package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the file looked up in the --config directory.
const configName = "lvtree.yaml"

// Config is the CLI configuration. Values come from lvtree.yaml, then
// LVTREE_* environment variables, then flags.
type Config struct {
	Graph     string `mapstructure:"graph"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	CacheSize int    `mapstructure:"cache_size" validate:"min=1"`
}

// ReadInConfig loads configPath/lvtree.yaml if present, overlays the
// environment and the graph flag from flags, and validates the result.
// A missing config file is not an error.
func ReadInConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	vi := newViper(configPath)

	if flags != nil {
		if f := flags.Lookup("graph"); f != nil {
			if err := vi.BindPFlag("graph", f); err != nil {
				return nil, err
			}
		}
	}

	if err := vi.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config, %w", err)
		}
	}

	c := &Config{}
	if err := vi.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config, %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return c, nil
}

func newViper(configPath string) *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix("LVTREE")
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vi.AutomaticEnv()

	vi.AddConfigPath(configPath)
	vi.SetConfigName(strings.TrimSuffix(configName, ".yaml"))
	vi.SetConfigType("yaml")

	vi.SetDefault("graph", "")
	vi.SetDefault("log_level", "info")
	vi.SetDefault("log_format", "console")
	vi.SetDefault("cache_size", 128)

	return vi
}
