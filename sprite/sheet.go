package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSheetMissing is returned by LoadSheet when the sheet file does not exist.
var ErrSheetMissing = errors.New("sprite sheet missing")

// ErrSheetSize is returned when a decoded sheet does not have the expected size.
var ErrSheetSize = errors.New("sprite sheet has unexpected size")

// LoadSheet loads the PNG at path. When the file does not exist a placeholder of
// width x height is returned together with an error wrapping ErrSheetMissing, so
// callers can warn and carry on.
func LoadSheet(path string, width, height, columns, rows int) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		placeholder := ebiten.NewImageFromImage(Placeholder(width, height, columns, rows))
		return placeholder, fmt.Errorf("%w: %s", ErrSheetMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	img, err := DecodeSheet(f, width, height)
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeSheet decodes an image and checks its dimensions.
func DecodeSheet(r io.Reader, width, height int) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if size := img.Bounds().Size(); size != image.Pt(width, height) {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSheetSize, size.X, size.Y, width, height)
	}
	return img, nil
}

// Placeholder draws a stand-in sheet: one tinted band per row, with a marker
// whose height grows with the column so animation stays visible.
func Placeholder(width, height, columns, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if columns <= 0 || rows <= 0 {
		return img
	}

	tileW, tileH := width/columns, height/rows
	for row := 0; row < rows; row++ {
		body := placeholderColor(row, rows)
		for col := 0; col < columns; col++ {
			tile := image.Rect(col*tileW, row*tileH, (col+1)*tileW, (row+1)*tileH)
			inner := tile.Inset(tileW / 6)
			draw.Draw(img, inner, image.NewUniform(body), image.Point{}, draw.Src)

			markerH := inner.Dy() * (col + 1) / (columns + 1)
			marker := image.Rect(inner.Min.X, inner.Max.Y-markerH, inner.Min.X+inner.Dx()/4, inner.Max.Y)
			draw.Draw(img, marker, image.NewUniform(color.White), image.Point{}, draw.Src)
		}
	}
	return img
}

func placeholderColor(row, rows int) color.RGBA {
	shade := uint8(80 + 150*row/max(rows, 1))
	if row >= rows/2 {
		return color.RGBA{R: 60, G: shade, B: 200, A: 255}
	}
	return color.RGBA{R: 200, G: shade, B: 60, A: 255}
}
