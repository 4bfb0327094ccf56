package player

import (
	"fmt"
	"math"

	"github.com/plus3/linkwalk/vmath"
)

// Heading is the compass direction the character faces.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var Headings = [...]Heading{North, East, South, West}

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// HeadingFromVector buckets v into a compass heading. Vectors in the right half
// plane are measured against East, everything else (the y axis and the zero
// vector included) against West. More than 45 degrees off that axis turns the
// heading North or South; exact diagonals keep the axis heading.
func HeadingFromVector(v vmath.Vec2) Heading {
	heading := West
	if v.X > 0 {
		heading = East
	}

	// tan(angle to the axis) > 1, compared without going through acos.
	if math.Abs(v.Y) > math.Abs(v.X) {
		switch {
		case v.Y > 0:
			return North
		case v.Y < 0:
			return South
		}
	}
	return heading
}
