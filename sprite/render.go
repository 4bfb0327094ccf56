package sprite

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/vmath"
)

// Background is the clear colour of the window.
var Background = color.RGBA{R: 40, G: 44, B: 52, A: 255}

// RenderSystem draws every sprite with an atlas relative to the camera.
type RenderSystem struct {
	Screen  ecs.Singleton[Screen]
	Atlases ecs.Singleton[Atlases]

	Cameras ecs.Query[struct {
		*Camera
		*Transform
	}]
	Sprites ecs.Query[struct {
		*Transform
		*Sprite
		*TextureAtlas
	}]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	atlases := s.Atlases.Get()
	if screen == nil || screen.Image == nil || atlases == nil {
		return
	}

	screen.Image.Fill(Background)

	var camera vmath.Vec2
	if cam, ok := s.Cameras.Single(); ok {
		camera = cam.Translation
	}
	bounds := screen.Image.Bounds().Size()

	for item := range s.Sprites.Values() {
		if item.Sprite.Image == nil {
			continue
		}
		layout, ok := atlases.Get(item.TextureAtlas.Layout)
		if !ok {
			continue
		}
		rect, ok := layout.Frame(item.TextureAtlas.Index)
		if !ok {
			continue
		}

		sub := item.Sprite.Image.SubImage(rect).(*ebiten.Image)
		screen.Image.DrawImage(sub, DrawOptions(item.Transform, rect.Size(), camera, bounds))
	}
}

// DrawOptions positions a frame of the given size so that its centre lands on the
// transform's translation, with the camera at the centre of a screen of the given size.
func DrawOptions(t *Transform, frame image.Point, camera vmath.Vec2, screen image.Point) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest

	op.GeoM.Translate(-float64(frame.X)/2, -float64(frame.Y)/2)
	op.GeoM.Scale(t.Scale, t.Scale)

	x, y := ScreenPosition(t.Translation, camera, screen)
	op.GeoM.Translate(x, y)
	return op
}

// ScreenPosition converts a world position into window pixels.
func ScreenPosition(world, camera vmath.Vec2, screen image.Point) (float64, float64) {
	rel := world.Sub(camera)
	return float64(screen.X)/2 + rel.X, float64(screen.Y)/2 - rel.Y
}
