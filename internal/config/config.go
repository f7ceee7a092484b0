/*
Package config loads runtime settings from an optional YAML file and
environment variables, with sensible defaults for every key.

A missing config file is not an error: the defaults describe a fully working
local installation under ~/.ai-finder.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	MaxResults       int    `mapstructure:"max_results"`
	HistoryLimit     int    `mapstructure:"history_limit"`
	RateLimitEnabled bool   `mapstructure:"rate_limit_enabled"`
}

// DefaultDataDir returns ~/.ai-finder, falling back to a relative directory
// when the home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ai-finder"
	}
	return filepath.Join(home, ".ai-finder")
}

// Load reads configuration from path. An empty path loads defaults plus
// environment overrides (AI_FINDER_DATA_DIR and friends); a non-empty path
// must exist and parse.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("max_results", 5)
	v.SetDefault("history_limit", 50)
	v.SetDefault("rate_limit_enabled", true)

	v.SetEnvPrefix("AI_FINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.MaxResults <= 0 {
		return nil, fmt.Errorf("max_results must be positive, got %d", config.MaxResults)
	}
	if config.HistoryLimit <= 0 {
		return nil, fmt.Errorf("history_limit must be positive, got %d", config.HistoryLimit)
	}

	return &config, nil
}
