package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	config, err := ParseArgs([]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "", config.Locale)
	assert.False(t, config.MultiEdit)
	assert.False(t, config.ShowHelp)
	assert.Equal(t, "", config.ScriptPath)
}

func TestParseArgsFlags(t *testing.T) {
	config, err := ParseArgs([]string{"--log-level", "debug", "--locale", "de", "--multi-edit", "ops.txt"})
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "de", config.Locale)
	assert.True(t, config.MultiEdit)
	assert.Equal(t, "ops.txt", config.ScriptPath)
}

func TestParseArgsShorthand(t *testing.T) {
	config, err := ParseArgs([]string{"-l", "warn"})
	require.NoError(t, err)
	assert.Equal(t, "warn", config.LogLevel)

	config, err = ParseArgs([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, config.ShowHelp)
}

func TestParseArgsInvalidLogLevel(t *testing.T) {
	_, err := ParseArgs([]string{"--log-level", "verbose"})
	assert.Error(t, err)
}

func TestParseArgsEnvFallbacks(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LAYER_LOCALE", "en-US")
	t.Setenv("LAYER_MULTI_EDIT", "1")

	config, err := ParseArgs([]string{})
	require.NoError(t, err)

	assert.Equal(t, "error", config.LogLevel)
	assert.Equal(t, "en-US", config.Locale)
	assert.True(t, config.MultiEdit)
}

func TestParseArgsFlagsBeatEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LAYER_LOCALE", "de")

	config, err := ParseArgs([]string{"--log-level", "debug", "--locale", "ja"})
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "ja", config.Locale)
}
