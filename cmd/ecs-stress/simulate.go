package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/input"
	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/sprite"
)

var errNoPlayers = errors.New("at least one player is required")

type Options struct {
	Duration       time.Duration
	Players        int
	MaxUpdates     int64
	DeltaTime      float64
	HoldFrames     int
	Seed           uint64
	GCPauseMetrics bool
}

// keyCombos are the inputs the script picks from; the empty set idles.
var keyCombos = [][]ebiten.Key{
	{},
	{ebiten.KeyArrowUp},
	{ebiten.KeyArrowDown},
	{ebiten.KeyArrowLeft},
	{ebiten.KeyArrowRight},
	{ebiten.KeyArrowUp, ebiten.KeyArrowLeft},
	{ebiten.KeyArrowDown, ebiten.KeyArrowRight},
	{ebiten.KeyArrowUp, ebiten.KeyArrowDown},
}

// newScript builds an input script that changes key combination every hold updates.
func newScript(rng *rand.Rand, hold int) *input.Script {
	const combos = 64

	script := &input.Script{}
	for range combos {
		keys := keyCombos[rng.IntN(len(keyCombos))]
		for range max(hold, 1) {
			script.Steps = append(script.Steps, keys)
		}
	}
	return script
}

// extraPlayers spawns count players next to the one the player plugin spawns.
// They start South and Idle like it and read the same Keyboard, so every player
// holds the same heading and state and the shared AnimationIndices fit them all.
func extraPlayers(cfg player.Config, count int) ecs.Plugin {
	return ecs.PluginFunc(func(app *ecs.App) error {
		atlases := ecs.NewSingleton[sprite.Atlases](app.Storage)
		app.AddStartupSystems(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			layout := atlases.Get().Add(cfg.Sheet.Grid())
			for range count {
				frame.Commands.Spawn(player.Bundle(cfg, nil, layout, player.DefaultAnimationIndices())...)
			}
		}))
		return nil
	})
}

// Simulate runs the player systems until ctx is done or MaxUpdates is reached.
func Simulate(ctx context.Context, opts Options, logger *log.Logger) (*Report, error) {
	if opts.Players < 1 {
		return nil, errNoPlayers
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	script := newScript(rng, opts.HoldFrames)
	cfg := player.DefaultConfig()

	app := ecs.NewApp(logger)
	err := app.AddPlugins(
		input.Plugin{Source: script, Watch: player.InputKeys},
		sprite.Plugin{},
		player.Plugin{Config: cfg, Jitter: rng.Float64},
		extraPlayers(cfg, opts.Players-1),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("spawning players", "count", opts.Players)
	app.Startup()

	report := &Report{
		Duration:       opts.Duration,
		Players:        opts.Players,
		DeltaTime:      opts.DeltaTime,
		GCPauseMetrics: opts.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
Loop:
	for opts.MaxUpdates <= 0 || report.TotalUpdates < opts.MaxUpdates {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		updateStart := time.Now()
		app.Update(opts.DeltaTime)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
		script.Advance()
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Systems = app.UpdateStats().Systems
	report.Census = takeCensus(app.Storage)
	if indices := ecs.NewSingleton[player.AnimationIndices](app.Storage).Get(); indices != nil {
		report.Indices = *indices
	}
	return report, nil
}

// takeCensus counts players per heading and animation state.
func takeCensus(storage *ecs.Storage) []CensusRow {
	counts := map[[2]uint8]int{}
	query := ecs.NewQuery[struct {
		*player.Player
		*player.Heading
		*player.AnimationState
	}](storage)
	query.Execute()

	for p := range query.Values() {
		counts[[2]uint8{uint8(*p.Heading), uint8(*p.AnimationState)}]++
	}

	var rows []CensusRow
	for _, heading := range player.Headings {
		for _, state := range []player.AnimationState{player.Idle, player.Active} {
			if n := counts[[2]uint8{uint8(heading), uint8(state)}]; n > 0 {
				rows = append(rows, CensusRow{Heading: heading, State: state, Count: n})
			}
		}
	}
	return rows
}
