// Package config loads pocketh settings from an optional pocketh.yaml and
// POCKETH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/luxfi/pocketh/pkg/search"
)

const (
	EnvPrefix  = "POCKETH"
	configName = "pocketh"

	DefaultEnvironment = "development"
	DefaultInfixLength = 6
	DefaultFormat      = "text"
)

// InitViperConfig registers defaults and reads the first pocketh.yaml found
// in ., $HOME/.pocketh or /etc/pocketh. A missing file is not an error.
func InitViperConfig() error {
	SetDefaults()
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.pocketh")
	viper.AddConfigPath("/etc/pocketh")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// SetDefaults registers default values and environment bindings, e.g.
// search.workers is read from POCKETH_SEARCH_WORKERS.
func SetDefaults() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("environment", DefaultEnvironment)
	viper.SetDefault("debug", false)
	viper.SetDefault("output.format", DefaultFormat)
	viper.SetDefault("search.workers", 0)
	viper.SetDefault("search.infix_length", DefaultInfixLength)
	viper.SetDefault("search.alphabet", search.DefaultSymbols)
	viper.SetDefault("search.tie_break", search.LowestIndex.String())
	viper.SetDefault("search.timeout", time.Duration(0))
}

// SearchConfig holds the collision search settings.
type SearchConfig struct {
	Workers     int
	InfixLength int
	Alphabet    string
	TieBreak    string
	// Timeout bounds a search's wall-clock time; zero means no limit.
	Timeout time.Duration
}

// LoadSearchConfig reads the search.* keys.
func LoadSearchConfig() (SearchConfig, error) {
	cfg := SearchConfig{
		Workers:     viper.GetInt("search.workers"),
		InfixLength: viper.GetInt("search.infix_length"),
		Alphabet:    viper.GetString("search.alphabet"),
		TieBreak:    viper.GetString("search.tie_break"),
		Timeout:     viper.GetDuration("search.timeout"),
	}
	if cfg.Workers < 0 {
		return SearchConfig{}, fmt.Errorf("search.workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.InfixLength < 0 {
		return SearchConfig{}, fmt.Errorf("search.infix_length must not be negative, got %d", cfg.InfixLength)
	}
	if cfg.Timeout < 0 {
		return SearchConfig{}, fmt.Errorf("search.timeout must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// Environment returns the configured environment name.
func Environment() string {
	return viper.GetString("environment")
}

// Debug reports whether debug logging is enabled.
func Debug() bool {
	return viper.GetBool("debug")
}

// OutputFormat returns the default output format.
func OutputFormat() string {
	return viper.GetString("output.format")
}
