// Package config reads the ambient settings of the todo CLI from the
// environment. None of them change how tasks are stored.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/idilsaglam/plaintodo/internal/ui"
)

const (
	envPrefix = "TODO"

	keyLogLevel = "log_level" // TODO_LOG_LEVEL
	keyColor    = "color"     // TODO_COLOR

	defaultLogLevel = "warn"
	defaultColor    = "auto"
)

type Config struct {
	LogLevel log.Level
	Color    ui.ColorMode
}

// Load resolves settings from TODO_* environment variables, falling back
// to defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyColor, defaultColor)

	lvl, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s_%s: %w", envPrefix, "LOG_LEVEL", err)
	}
	color, err := ui.ParseColorMode(v.GetString(keyColor))
	if err != nil {
		return nil, fmt.Errorf("%s_%s: %w", envPrefix, "COLOR", err)
	}
	return &Config{LogLevel: lvl, Color: color}, nil
}

// Default is what Load returns with a clean environment.
func Default() *Config {
	return &Config{LogLevel: log.WarnLevel, Color: ui.ColorAuto}
}
