package sprite

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/vmath"
)

// Transform places an entity in world units. Y grows upwards.
type Transform struct {
	Translation vmath.Vec2
	Scale       float64
}

func NewTransform(x, y float64) Transform {
	return Transform{Translation: vmath.Vec2{X: x, Y: y}, Scale: 1}
}

// Sprite is the sheet image an entity is drawn from.
type Sprite struct {
	Image *ebiten.Image
}

// TextureAtlas selects which frame of a layout is drawn.
type TextureAtlas struct {
	Layout Handle
	Index  int
}

// Camera marks the entity whose Transform is the centre of the window.
type Camera struct{}

// Screen carries the image being drawn this frame.
type Screen struct {
	Image *ebiten.Image
}

func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[TextureAtlas](registry)
	ecs.RegisterComponent[Camera](registry)
}
