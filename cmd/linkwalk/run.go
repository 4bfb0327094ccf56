package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/linkwalk/audio"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/ecs/debugui"
	debugui_ebiten "github.com/plus3/linkwalk/ecs/debugui/ebiten"
	"github.com/plus3/linkwalk/input"
	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/sprite"
)

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logger.Info("config loaded", "source", source)

	sheet, err := sprite.LoadSheet(cfg.Sheet.Path, cfg.Sheet.Width, cfg.Sheet.Height, cfg.Sheet.Columns, cfg.Sheet.Rows)
	switch {
	case errors.Is(err, sprite.ErrSheetMissing):
		logger.Warn("sprite sheet not found, drawing a placeholder", "path", cfg.Sheet.Path)
	case err != nil:
		return err
	}

	app := ecs.NewApp(logger)
	plugins := []ecs.Plugin{
		input.Plugin{Watch: slices.Concat(player.InputKeys, quitKeys)},
		sprite.Plugin{},
		player.Plugin{Config: cfg.PlayerConfig(), Sheet: sheet},
	}

	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio.SampleRate, cfg.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sounds.Cleanup()
			plugins = append(plugins, audio.Plugin{Steps: sounds, Frames: cfg.Audio.StepFrames})
		}
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	game := &Game{app: app, dt: 1 / float64(cfg.Window.TPS)}

	if cfg.Debug.Enabled {
		backend := debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		game.imgui = &backend
		plugins = append(plugins, debugui.Plugin{Panels: []debugui.Panel{
			debugui.NewStatsPanel(app.Storage, 120,
				debugui.Phase{Name: "Update", Stats: app.UpdateStats},
				debugui.Phase{Name: "Render", Stats: app.RenderStats},
			),
			&debugui.EntitiesPanel{Storage: app.Storage},
			&PlayerPanel{Storage: app.Storage},
		}})
	}

	if err := app.AddPlugins(plugins...); err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	game.bind()

	logger.Info("starting", "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "tps", cfg.Window.TPS, "debug", cfg.Debug.Enabled)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}
