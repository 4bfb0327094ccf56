// Package sprite holds sprite sheets, atlas layouts and the render system that draws them.
package sprite

import (
	"fmt"
	"image"
)

// AtlasLayout is a list of frame rectangles inside a sprite sheet of a given size.
type AtlasLayout struct {
	Size   image.Point
	Frames []image.Rectangle
}

// FromGrid builds a layout of columns*rows tiles, row by row, left to right.
// Each tile is separated from its neighbours by padding and the whole grid is
// shifted by offset.
func FromGrid(tile image.Point, columns, rows int, padding, offset image.Point) AtlasLayout {
	layout := AtlasLayout{
		Frames: make([]image.Rectangle, 0, columns*rows),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			cell := tile.Add(padding)
			origin := image.Pt(cell.X*x, cell.Y*y).Add(offset)
			rect := image.Rectangle{Min: origin, Max: origin.Add(tile)}
			layout.Frames = append(layout.Frames, rect)
			layout.Size.X = max(layout.Size.X, rect.Max.X)
			layout.Size.Y = max(layout.Size.Y, rect.Max.Y)
		}
	}

	return layout
}

// Len returns the number of frames.
func (l *AtlasLayout) Len() int {
	return len(l.Frames)
}

// Frame returns the rectangle of frame i. Out of range indices yield an empty rectangle.
func (l *AtlasLayout) Frame(i int) (image.Rectangle, bool) {
	if i < 0 || i >= len(l.Frames) {
		return image.Rectangle{}, false
	}
	return l.Frames[i], true
}

func (l AtlasLayout) String() string {
	if len(l.Frames) == 0 {
		return "empty layout"
	}
	first := l.Frames[0]
	return fmt.Sprintf("%d frames of %dx%d starting at %v", len(l.Frames), first.Dx(), first.Dy(), first.Min)
}

// Handle addresses a layout stored in Atlases. The zero Handle is never valid.
type Handle uint32

// Atlases is the singleton store of every atlas layout in the world.
type Atlases struct {
	layouts []AtlasLayout
}

// Add stores layout and returns its handle.
func (a *Atlases) Add(layout AtlasLayout) Handle {
	a.layouts = append(a.layouts, layout)
	return Handle(len(a.layouts))
}

// Get returns the layout for h.
func (a *Atlases) Get(h Handle) (*AtlasLayout, bool) {
	if h == 0 || int(h) > len(a.layouts) {
		return nil, false
	}
	return &a.layouts[h-1], true
}

func (a *Atlases) Len() int {
	return len(a.layouts)
}
