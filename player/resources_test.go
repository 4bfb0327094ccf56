package player_test

import (
	"image"
	"testing"
	"time"

	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicesFor(t *testing.T) {
	assert.Equal(t, player.AnimationIndices{First: 0, Last: 0}, player.IndicesFor(player.North, player.Idle))
	for _, h := range []player.Heading{player.East, player.South, player.West} {
		assert.Equal(t, player.AnimationIndices{First: 0, Last: 2}, player.IndicesFor(h, player.Idle), h.String())
	}
	for _, h := range player.Headings {
		assert.Equal(t, player.AnimationIndices{First: 0, Last: 9}, player.IndicesFor(h, player.Active), h.String())
	}
	assert.Equal(t, player.AnimationIndices{First: 0, Last: 2}, player.DefaultAnimationIndices())
}

func TestTimerDurationFor(t *testing.T) {
	assert.Equal(t, 80*time.Millisecond, player.TimerDurationFor(true, player.Idle, 0.5))
	assert.Equal(t, 80*time.Millisecond, player.TimerDurationFor(true, player.Active, 0.5))
	assert.Equal(t, 30*time.Millisecond, player.TimerDurationFor(false, player.Active, 0.5))
	assert.Equal(t, time.Second, player.TimerDurationFor(false, player.Idle, 0))

	idle := player.TimerDurationFor(false, player.Idle, 0.999)
	assert.Greater(t, idle, time.Second)
	assert.Less(t, idle, time.Second+4*time.Millisecond)
	assert.InDelta(t, 1+0.5/255, player.TimerDurationFor(false, player.Idle, 0.5).Seconds(), 1e-6)
}

func TestSheetGeometry(t *testing.T) {
	sheet := player.DefaultSheet()
	assert.Equal(t, image.Pt(120, 130), sheet.Tile())

	rows := map[[2]int]int{}
	for _, h := range player.Headings {
		for _, s := range []player.AnimationState{player.Idle, player.Active} {
			rows[[2]int{int(h), int(s)}] = sheet.Row(h, s)
		}
	}
	assert.Equal(t, 0, rows[[2]int{int(player.South), int(player.Idle)}])
	assert.Equal(t, 1, rows[[2]int{int(player.West), int(player.Idle)}])
	assert.Equal(t, 2, rows[[2]int{int(player.North), int(player.Idle)}])
	assert.Equal(t, 3, rows[[2]int{int(player.East), int(player.Idle)}])
	assert.Equal(t, 4, rows[[2]int{int(player.South), int(player.Active)}])
	assert.Equal(t, 5, rows[[2]int{int(player.West), int(player.Active)}])
	assert.Equal(t, 6, rows[[2]int{int(player.North), int(player.Active)}])
	assert.Equal(t, 7, rows[[2]int{int(player.East), int(player.Active)}])

	assert.Equal(t, image.Point{}, sheet.Offset(player.South, player.Idle))
	assert.Equal(t, image.Pt(0, 910), sheet.Offset(player.East, player.Active))
}

func TestSheetLayouts(t *testing.T) {
	sheet := player.DefaultSheet()

	northIdle := sheet.Layout(player.North, player.Idle)
	require.Equal(t, 1, northIdle.Len())
	assert.Equal(t, image.Rect(0, 260, 120, 390), northIdle.Frames[0])

	westIdle := sheet.Layout(player.West, player.Idle)
	require.Equal(t, 3, westIdle.Len())
	assert.Equal(t, image.Rect(240, 130, 360, 260), westIdle.Frames[2])

	eastWalk := sheet.Layout(player.East, player.Active)
	require.Equal(t, 10, eastWalk.Len())
	assert.Equal(t, image.Rect(0, 910, 120, 1040), eastWalk.Frames[0])
	assert.Equal(t, image.Rect(1080, 910, 1200, 1040), eastWalk.Frames[9])

	grid := sheet.Grid()
	assert.Equal(t, 80, grid.Len())
	assert.Equal(t, image.Pt(1200, 1040), grid.Size)
}

func TestSpriteLayoutsResolve(t *testing.T) {
	var atlases sprite.Atlases
	sheet := player.DefaultSheet()
	layouts := player.NewSpriteLayouts(&atlases, sheet)
	assert.Equal(t, 8, atlases.Len())

	seen := map[sprite.Handle]bool{}
	for _, h := range player.Headings {
		for _, s := range []player.AnimationState{player.Idle, player.Active} {
			handle := layouts.Resolve(h, s)
			assert.False(t, seen[handle], "handles are distinct")
			seen[handle] = true

			layout, ok := atlases.Get(handle)
			require.True(t, ok)
			assert.Equal(t, sheet.Layout(h, s), *layout)
		}
	}
}

func TestPositionString(t *testing.T) {
	transform := sprite.NewTransform(12.5, -3)
	assert.Equal(t, "x: 12.5, y: -3", player.PositionOf(&transform).String())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, player.DefaultConfig().Validate())

	cfg := player.DefaultConfig()
	cfg.Speed = 0
	assert.ErrorIs(t, cfg.Validate(), player.ErrInvalidConfig)

	cfg = player.DefaultConfig()
	cfg.Sheet.Rows = 4
	assert.ErrorIs(t, cfg.Validate(), player.ErrInvalidConfig)

	cfg = player.DefaultConfig()
	cfg.Sheet.Width = 1201
	assert.ErrorIs(t, cfg.Validate(), player.ErrInvalidConfig)
}
