package sprite_test

import (
	"image"
	"testing"

	"github.com/plus3/linkwalk/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGrid(t *testing.T) {
	layout := sprite.FromGrid(image.Pt(120, 130), 3, 1, image.Point{}, image.Pt(0, 130))

	require.Equal(t, 3, layout.Len())
	assert.Equal(t, image.Rect(0, 130, 120, 260), layout.Frames[0])
	assert.Equal(t, image.Rect(120, 130, 240, 260), layout.Frames[1])
	assert.Equal(t, image.Rect(240, 130, 360, 260), layout.Frames[2])
	assert.Equal(t, image.Pt(360, 260), layout.Size)
}

func TestFromGridRowsThenColumns(t *testing.T) {
	layout := sprite.FromGrid(image.Pt(10, 20), 2, 2, image.Pt(1, 2), image.Point{})

	require.Equal(t, 4, layout.Len())
	assert.Equal(t, image.Rect(0, 0, 10, 20), layout.Frames[0])
	assert.Equal(t, image.Rect(11, 0, 21, 20), layout.Frames[1])
	assert.Equal(t, image.Rect(0, 22, 10, 42), layout.Frames[2])
	assert.Equal(t, image.Rect(11, 22, 21, 42), layout.Frames[3])
}

func TestFrameOutOfRange(t *testing.T) {
	layout := sprite.FromGrid(image.Pt(8, 8), 2, 1, image.Point{}, image.Point{})

	_, ok := layout.Frame(-1)
	assert.False(t, ok)
	_, ok = layout.Frame(2)
	assert.False(t, ok)

	rect, ok := layout.Frame(1)
	assert.True(t, ok)
	assert.Equal(t, image.Rect(8, 0, 16, 8), rect)
}

func TestAtlases(t *testing.T) {
	var atlases sprite.Atlases

	_, ok := atlases.Get(0)
	assert.False(t, ok, "zero handle is never valid")

	a := atlases.Add(sprite.FromGrid(image.Pt(4, 4), 1, 1, image.Point{}, image.Point{}))
	b := atlases.Add(sprite.FromGrid(image.Pt(4, 4), 5, 1, image.Point{}, image.Point{}))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, atlases.Len())

	layout, ok := atlases.Get(b)
	require.True(t, ok)
	assert.Equal(t, 5, layout.Len())

	_, ok = atlases.Get(b + 1)
	assert.False(t, ok)
}
