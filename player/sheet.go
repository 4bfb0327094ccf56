package player

import (
	"image"

	"github.com/plus3/linkwalk/sprite"
)

// Sheet describes the pixel grid of the character sprite sheet. Rows hold, top to
// bottom, the idle cycles for South, West, North, East and then the walk cycles in
// the same order. Idle rows use three columns, except North which has one.
type Sheet struct {
	Width   int
	Height  int
	Columns int
	Rows    int
}

const (
	idleColumns      = 3
	northIdleColumns = 1
)

// DefaultSheet is the 1200x1040 sheet of 10x8 tiles.
func DefaultSheet() Sheet {
	return Sheet{Width: 1200, Height: 1040, Columns: 10, Rows: 8}
}

// Tile is the size of one frame.
func (s Sheet) Tile() image.Point {
	return image.Pt(s.Width/s.Columns, s.Height/s.Rows)
}

// ColumnCount is the number of frames in the row for heading and state.
func (s Sheet) ColumnCount(heading Heading, state AnimationState) int {
	switch {
	case state == Idle && heading == North:
		return northIdleColumns
	case state == Idle:
		return idleColumns
	default:
		return s.Columns
	}
}

// Row returns the sheet row holding the cycle for heading and state.
func (s Sheet) Row(heading Heading, state AnimationState) int {
	var row int
	switch heading {
	case South:
		row = 0
	case West:
		row = 1
	case North:
		row = 2
	case East:
		row = 3
	}
	if state == Active {
		row += 4
	}
	return row
}

// Offset is the pixel origin of the row for heading and state.
func (s Sheet) Offset(heading Heading, state AnimationState) image.Point {
	return image.Pt(0, s.Row(heading, state)*s.Tile().Y)
}

// Layout is the single-row atlas layout for heading and state.
func (s Sheet) Layout(heading Heading, state AnimationState) sprite.AtlasLayout {
	return sprite.FromGrid(s.Tile(), s.ColumnCount(heading, state), 1, image.Point{}, s.Offset(heading, state))
}

// Grid is the layout covering the whole sheet.
func (s Sheet) Grid() sprite.AtlasLayout {
	return sprite.FromGrid(s.Tile(), s.Columns, s.Rows, image.Point{}, image.Point{})
}
