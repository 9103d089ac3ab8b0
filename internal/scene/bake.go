package scene

import (
	"image/color"

	"github.com/philipparndt/stlview/pkg/geometry"
)

// BakedTriangle is a world space triangle with its lit color, wound so that
// the side to draw is counter-clockwise
type BakedTriangle struct {
	geometry.Triangle
	Color color.RGBA
}

// Bake returns the faces a GPU renderer with back-face culling should draw.
// Faces are shaded for a viewer looking along the face normal, which keeps
// the result independent of the camera.
func (o *Object) Bake(l Lights) []BakedTriangle {
	m := o.Material()
	tris := o.WorldTriangles()

	front := m.Side == FrontSide || m.Side == DoubleSide
	back := m.Side == BackSide || m.Side == DoubleSide

	out := make([]BakedTriangle, 0, len(tris))
	for _, t := range tris {
		if front {
			out = append(out, BakedTriangle{Triangle: t, Color: Shade(m, l, t.Normal, t.Normal)})
		}
		if back {
			f := t.Flip()
			out = append(out, BakedTriangle{Triangle: f, Color: Shade(m, l, f.Normal, f.Normal)})
		}
	}
	return out
}

// Edge is a line between two vertices
type Edge [2]geometry.Vector3

// Edges returns the unique world space edges of the object, for wireframe drawing
func (o *Object) Edges() []Edge {
	seen := make(map[Edge]bool)
	var edges []Edge

	for _, t := range o.WorldTriangles() {
		for _, e := range []Edge{{t.V1, t.V2}, {t.V2, t.V3}, {t.V3, t.V1}} {
			key := e
			if less(e[1], e[0]) {
				key = Edge{e[1], e[0]}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, e)
		}
	}
	return edges
}

func less(a, b geometry.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
