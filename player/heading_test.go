package player_test

import (
	"testing"

	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/vmath"
	"github.com/stretchr/testify/assert"
)

func TestHeadingFromVector(t *testing.T) {
	tests := []struct {
		name string
		v    vmath.Vec2
		want player.Heading
	}{
		{"east", vmath.Vec2{X: 1}, player.East},
		{"west", vmath.Vec2{X: -1}, player.West},
		{"north", vmath.Vec2{Y: 1}, player.North},
		{"south", vmath.Vec2{Y: -1}, player.South},
		{"mostly east", vmath.Vec2{X: 2, Y: 1}, player.East},
		{"mostly east going down", vmath.Vec2{X: 2, Y: -1}, player.East},
		{"steep north east", vmath.Vec2{X: 1, Y: 2}, player.North},
		{"steep south east", vmath.Vec2{X: 1, Y: -2}, player.South},
		{"mostly west", vmath.Vec2{X: -2, Y: 1}, player.West},
		{"steep north west", vmath.Vec2{X: -1, Y: 2}, player.North},
		{"steep south west", vmath.Vec2{X: -1, Y: -2}, player.South},
		{"zero", vmath.Zero, player.West},
		{"diagonal north east", vmath.Vec2{X: 1, Y: 1}, player.East},
		{"diagonal north west", vmath.Vec2{X: -1, Y: 1}, player.West},
		{"diagonal south east", vmath.Vec2{X: 1, Y: -1}, player.East},
		{"diagonal south west", vmath.Vec2{X: -1, Y: -1}, player.West},
		{"normalized diagonal", vmath.Vec2{X: 3, Y: 3}.Normalize(), player.East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, player.HeadingFromVector(tt.v))
		})
	}
}

func TestHeadingString(t *testing.T) {
	assert.Equal(t, "North", player.North.String())
	assert.Equal(t, "West", player.West.String())
	assert.Equal(t, "Heading(9)", player.Heading(9).String())
	assert.Equal(t, "Active", player.Active.String())
}
