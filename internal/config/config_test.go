package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/linkwalk/internal/config"
	"github.com/plus3/linkwalk/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.Equal(t, config.Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, player.DefaultConfig(), cfg.PlayerConfig())
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
player:
  speed: 300
  spawn_period: 120ms
log:
  level: debug
`)

	cfg, source, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 300.0, cfg.Player.Speed)
	assert.Equal(t, 120*time.Millisecond, cfg.Player.SpawnPeriod)
	assert.Equal(t, 0.5, cfg.Player.Scale, "unset keys keep their defaults")
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "configs", "linkwalk.yaml"), "window:\n  title: local\n")
	cfg, source, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "linkwalk.yaml"), source)
	assert.Equal(t, "local", cfg.Window.Title)

	userPath := filepath.Join(dir, ".linkwalk", "config.yaml")
	writeFile(t, userPath, "window:\n  title: user\n")
	cfg, source, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, "user", cfg.Window.Title)

}

func TestLoadReportsBrokenSearchedFiles(t *testing.T) {
	dir := isolate(t)

	localPath := filepath.Join("configs", "linkwalk.yaml")
	writeFile(t, filepath.Join(dir, localPath), "window: [not, a, map\n")
	_, source, err := config.Load("")
	require.Error(t, err)
	assert.Equal(t, localPath, source)
	assert.ErrorContains(t, err, localPath)

	userPath := filepath.Join(dir, ".linkwalk", "config.yaml")
	writeFile(t, userPath, "player: [1, 2\n")
	_, source, err = config.Load("")
	require.Error(t, err)
	assert.Equal(t, userPath, source, "a broken user config is not skipped")
	assert.ErrorContains(t, err, userPath)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	_, _, err := config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "player: [1, 2\n")
	_, _, err = config.Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "player:\n  speed: -5\n")
	_, _, err = config.Load(invalid)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, player.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"window size", func(c *config.Config) { c.Window.Width = 0 }},
		{"tps", func(c *config.Config) { c.Window.TPS = -1 }},
		{"sheet path", func(c *config.Config) { c.Sheet.Path = "" }},
		{"sheet rows", func(c *config.Config) { c.Sheet.Rows = 3 }},
		{"sample rate", func(c *config.Config) { c.Audio.SampleRate = 0 }},
		{"volume", func(c *config.Config) { c.Audio.Volume = 1.5 }},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Audio.SampleRate = 0
	assert.NoError(t, cfg.Validate(), "sample rate only matters with audio on")
}
