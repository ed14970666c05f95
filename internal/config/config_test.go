package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/plaintodo/internal/ui"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "")
	t.Setenv("TODO_COLOR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "debug")
	t.Setenv("TODO_COLOR", "never")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, ui.ColorNever, cfg.Color)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("TODO_LOG_LEVEL", "loud")
		t.Setenv("TODO_COLOR", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TODO_LOG_LEVEL")
	})

	t.Run("color", func(t *testing.T) {
		t.Setenv("TODO_LOG_LEVEL", "")
		t.Setenv("TODO_COLOR", "rainbow")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TODO_COLOR")
	})
}
