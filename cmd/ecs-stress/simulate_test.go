package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/linkwalk/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Duration:   time.Minute,
		Players:    25,
		MaxUpdates: 240,
		DeltaTime:  1.0 / 60.0,
		HoldFrames: 20,
		Seed:       7,
	}
}

func TestSimulate(t *testing.T) {
	report, err := Simulate(context.Background(), testOptions(), log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, int64(240), report.TotalUpdates)
	assert.Len(t, report.UpdateTime.Samples, 240)
	assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.Avg)
	assert.LessOrEqual(t, report.UpdateTime.Avg, report.UpdateTime.Max)

	total := 0
	for _, row := range report.Census {
		total += row.Count
	}
	assert.Equal(t, 25, total, "every player is counted once")
	assert.Len(t, report.Census, 1, "players move in lockstep")

	names := make([]string, 0, len(report.Systems))
	for _, s := range report.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(240), s.ExecutionCount)
	}
	assert.Equal(t, []string{
		"PollSystem", "InputSystem", "BlinkSystem", "TimerSystem",
		"IndicesSystem", "LayoutSystem", "AnimateSystem",
	}, names)
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := Simulate(context.Background(), testOptions(), log.New(io.Discard))
	require.NoError(t, err)
	b, err := Simulate(context.Background(), testOptions(), log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, a.Census, b.Census)
}

func TestSimulatePlayersShareIndices(t *testing.T) {
	opts := testOptions()
	for _, updates := range []int64{1, 17, 45, 130} {
		opts.MaxUpdates = updates
		report, err := Simulate(context.Background(), opts, log.New(io.Discard))
		require.NoError(t, err)
		require.Len(t, report.Census, 1)

		row := report.Census[0]
		assert.Equal(t, opts.Players, row.Count)
		assert.Equal(t, player.IndicesFor(row.Heading, row.State), report.Indices,
			"shared indices match every player after %d updates", updates)
	}
}

func TestSimulateStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := testOptions()
	opts.MaxUpdates = 0
	report, err := Simulate(ctx, opts, log.New(io.Discard))
	require.NoError(t, err)
	assert.Zero(t, report.TotalUpdates)
}

func TestSimulateNeedsPlayers(t *testing.T) {
	opts := testOptions()
	opts.Players = 0
	_, err := Simulate(context.Background(), opts, log.New(io.Discard))
	assert.ErrorIs(t, err, errNoPlayers)
}

func TestReportGenerate(t *testing.T) {
	opts := testOptions()
	opts.MaxUpdates = 10
	opts.GCPauseMetrics = true
	report, err := Simulate(context.Background(), opts, log.New(io.Discard))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Player Stress Test Report")
	assert.Contains(t, out, "- **Players:** 25")
	assert.Contains(t, out, "- **Total Updates:** 10")
	assert.Contains(t, out, "| AnimateSystem | 10 |")
	assert.Contains(t, out, "## GC Pause Durations")
}
