// Package viewer renders a scene in software. It backs the fyne frontend and
// headless snapshots, where no GPU context is available.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/geometry"
)

// projector maps world space to pixels for one frame
type projector struct {
	eye                geometry.Vector3
	right, up, forward geometry.Vector3
	near               float64
	fovScale, aspect   float64
	width, height      float64
}

func newProjector(c *scene.Camera) projector {
	right, up, forward := c.Basis()
	return projector{
		eye:      c.Position,
		right:    right,
		up:       up,
		forward:  forward,
		near:     c.Near,
		fovScale: math.Tan(c.FOV * math.Pi / 360),
		aspect:   c.Aspect,
		width:    float64(c.Width),
		height:   float64(c.Height),
	}
}

// toView returns the point in camera space, z pointing into the screen
func (p projector) toView(v geometry.Vector3) geometry.Vector3 {
	rel := v.Sub(p.eye)
	return geometry.NewVector3(rel.Dot(p.right), rel.Dot(p.up), rel.Dot(p.forward))
}

func (p projector) project(v geometry.Vector3) vertex {
	ndcX := v.X / (v.Z * p.fovScale * p.aspect)
	ndcY := v.Y / (v.Z * p.fovScale)
	return vertex{
		x: (ndcX + 1) * p.width / 2,
		y: (1 - ndcY) * p.height / 2,
		w: 1 / v.Z,
	}
}

// clipNear cuts a camera-space polygon at the near plane
func (p projector) clipNear(poly []geometry.Vector3) []geometry.Vector3 {
	out := make([]geometry.Vector3, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn := cur.Z >= p.near
		prevIn := prev.Z >= p.near
		if curIn != prevIn {
			t := (p.near - prev.Z) / (cur.Z - prev.Z)
			out = append(out, prev.Lerp(cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// Render draws the scene at the camera's viewport size
func Render(s *scene.Scene) *image.RGBA {
	f := newFrame(max(s.Camera.Width, 1), max(s.Camera.Height, 1), s.Background)
	p := newProjector(s.Camera)

	for _, obj := range s.Objects() {
		if obj.Visible() {
			drawObject(f, p, s.Lights, obj)
		}
	}
	for _, g := range s.Grids() {
		for _, seg := range g.Lines() {
			drawSegment(f, p, seg.A, seg.B, seg.Color)
		}
	}
	return f.img
}

func drawObject(f *frame, p projector, lights scene.Lights, obj *scene.Object) {
	m := obj.Material()

	for _, tri := range obj.WorldTriangles() {
		front := tri.FacesTowards(p.eye)
		switch {
		case m.Wireframe:
			// lines ignore face culling
		case m.Side == scene.FrontSide && !front:
			continue
		case m.Side == scene.BackSide && front:
			continue
		}

		normal := tri.Normal
		if !front {
			normal = normal.Mul(-1)
		}
		viewDir := p.eye.Sub(tri.Center()).Normalize()
		col := scene.Shade(m, lights, normal, viewDir)

		if m.Wireframe {
			drawSegment(f, p, tri.V1, tri.V2, col)
			drawSegment(f, p, tri.V2, tri.V3, col)
			drawSegment(f, p, tri.V3, tri.V1, col)
			continue
		}

		poly := p.clipNear([]geometry.Vector3{p.toView(tri.V1), p.toView(tri.V2), p.toView(tri.V3)})
		if len(poly) < 3 {
			continue
		}
		first := p.project(poly[0])
		for i := 1; i+1 < len(poly); i++ {
			f.fillTriangle(first, p.project(poly[i]), p.project(poly[i+1]), col)
		}
	}
}

func drawSegment(f *frame, p projector, a, b geometry.Vector3, col color.RGBA) {
	va, vb := p.toView(a), p.toView(b)
	if va.Z < p.near && vb.Z < p.near {
		return
	}
	if va.Z < p.near {
		va = vb.Lerp(va, (p.near-vb.Z)/(va.Z-vb.Z))
	} else if vb.Z < p.near {
		vb = va.Lerp(vb, (p.near-va.Z)/(vb.Z-va.Z))
	}
	f.drawLine(p.project(va), p.project(vb), col)
}
