package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/linkwalk.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/linkwalk.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "linkwalk",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Sheet: SheetConfig{
			Path:    "assets/sprite_sheets/link.png",
			Width:   1200,
			Height:  1040,
			Columns: 10,
			Rows:    8,
		},
		Player: PlayerConfig{
			Speed:       450,
			Scale:       0.5,
			SpawnPeriod: 50 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.25,
			StepFrames: []int{2, 7},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
