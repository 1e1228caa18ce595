package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, `
log-level: debug
board-size: 4
player-one-name: Alice
player-two-name: Bob
color: never
redis:
  enabled: true
  host: cache
  port: "6380"
  session-ttl: 5m
`)

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, "Alice", conf.PlayerOneName)
		assert.Equal(t, "Bob", conf.PlayerTwoName)
		assert.Equal(t, ColorNever, conf.Color)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Minute, conf.Redis.SessionTTL)
	})

	t.Run("Falls back to defaults without a config file", func(t *testing.T) {
		// When: the config path does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: the defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, "Player1", conf.PlayerOneName)
		assert.Equal(t, "Player2", conf.PlayerTwoName)
		assert.Equal(t, ColorAuto, conf.Color)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("BOARD_SIZE", "5")
		t.Setenv("PLAYER_ONE_NAME", "Carol")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		assert.Equal(t, 5, conf.BoardSize)
		assert.Equal(t, "Carol", conf.PlayerOneName)
	})

	t.Run("Rejects an unknown color mode", func(t *testing.T) {
		path := writeConfig(t, "color: rainbow\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrInvalidColorMode)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "color: rainbow\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
