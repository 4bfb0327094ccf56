// Package config loads the YAML configuration of the linkwalk binaries.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/linkwalk/player"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full linkwalk configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Sheet  SheetConfig  `yaml:"sheet"`
	Player PlayerConfig `yaml:"player"`
	Audio  AudioConfig  `yaml:"audio"`
	Debug  DebugConfig  `yaml:"debug"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // updates per second
}

// SheetConfig locates the character sprite sheet and its grid.
type SheetConfig struct {
	Path    string `yaml:"path"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
}

// PlayerConfig tunes the character.
type PlayerConfig struct {
	Speed       float64       `yaml:"speed"` // world units per second
	Scale       float64       `yaml:"scale"`
	SpawnPeriod time.Duration `yaml:"spawn_period"`
}

// AudioConfig controls footstep sounds.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	StepFrames []int   `yaml:"step_frames"`
}

type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks every section and returns the first problem found.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Sheet.Path == "" {
		return fmt.Errorf("%w: sheet path is empty", ErrInvalid)
	}
	if err := c.PlayerConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %g not in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return nil
}

// PlayerConfig converts the player and sheet sections for the player plugin.
func (c Config) PlayerConfig() player.Config {
	return player.Config{
		Speed:       c.Player.Speed,
		Scale:       c.Player.Scale,
		SpawnPeriod: c.Player.SpawnPeriod,
		Sheet: player.Sheet{
			Width:   c.Sheet.Width,
			Height:  c.Sheet.Height,
			Columns: c.Sheet.Columns,
			Rows:    c.Sheet.Rows,
		},
	}
}

// LogLevel parses the configured level, falling back to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
