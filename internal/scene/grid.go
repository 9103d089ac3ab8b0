package scene

import (
	"image/color"

	"github.com/philipparndt/stlview/pkg/geometry"
)

// Segment is a colored line in world space
type Segment struct {
	A, B  geometry.Vector3
	Color color.RGBA
}

// GridHelper is a square grid of lines on the XZ plane
type GridHelper struct {
	Size        float64
	Divisions   int
	CenterColor color.RGBA
	LineColor   color.RGBA
	Height      float64 // Y offset above the floor
	Visible     bool
}

// Lines returns Divisions+1 lines along each axis. The two lines through
// the origin use CenterColor.
func (g *GridHelper) Lines() []Segment {
	if g.Divisions <= 0 {
		return nil
	}

	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	center := g.Divisions / 2

	lines := make([]Segment, 0, 2*(g.Divisions+1))
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		c := g.LineColor
		if i == center && g.Divisions%2 == 0 {
			k = 0
			c = g.CenterColor
		}
		lines = append(lines,
			Segment{A: geometry.NewVector3(-half, g.Height, k), B: geometry.NewVector3(half, g.Height, k), Color: c},
			Segment{A: geometry.NewVector3(k, g.Height, -half), B: geometry.NewVector3(k, g.Height, half), Color: c},
		)
	}
	return lines
}
