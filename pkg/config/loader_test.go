package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Run("Should produce defaults with no file and no env", func(t *testing.T) {
		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.CLI.LogLevel)
		assert.False(t, cfg.CLI.Debug)
	})

	t.Run("Should apply values from the config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cli:\n  log_level: debug\n  debug: true\n"), 0o644))

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.CLI.LogLevel)
		assert.True(t, cfg.CLI.Debug)
	})

	t.Run("Should skip a missing config file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.CLI.LogLevel)
	})

	t.Run("Should let environment override the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cli:\n  log_level: debug\n"), 0o644))
		t.Setenv("ANVIL_CLI_LOG_LEVEL", "warn")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.CLI.LogLevel)
	})

	t.Run("Should reject an invalid log level", func(t *testing.T) {
		t.Setenv("ANVIL_CLI_LOG_LEVEL", "loud")

		_, err := NewLoader().Load("")
		assert.Error(t, err)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map prefixed vars to koanf paths", func(t *testing.T) {
		assert.Equal(t, "cli.log_level", transformEnvKey("ANVIL_CLI_LOG_LEVEL"))
		assert.Equal(t, "cli.profiles_path", transformEnvKey("ANVIL_CLI_PROFILES_PATH"))
	})

	t.Run("Should handle degenerate names", func(t *testing.T) {
		assert.Equal(t, "", transformEnvKey("ANVIL_"))
		assert.Equal(t, "cli", transformEnvKey("ANVIL_CLI"))
	})
}
