package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/internal/scene"
)

// drawWireframe renders the deduplicated edges of an object
func drawWireframe(entry *meshEntry) {
	for _, e := range entry.edges {
		rl.DrawLine3D(toRaylib(e[0]), toRaylib(e[1]), entry.color)
	}
}

// drawGrid renders a grid helper as a line list
func drawGrid(g *scene.GridHelper) {
	for _, seg := range g.Lines() {
		rl.DrawLine3D(toRaylib(seg.A), toRaylib(seg.B), seg.Color)
	}
}
