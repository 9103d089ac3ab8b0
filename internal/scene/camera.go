package scene

import (
	"math"

	"github.com/philipparndt/stlview/pkg/geometry"
)

// Camera is a perspective camera that looks at a target point
type Camera struct {
	FOV      float64 // vertical field of view in degrees
	Near     float64
	Far      float64
	Aspect   float64
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3

	// Viewport size in pixels, kept in sync with Aspect by Scene.Resize
	Width, Height int
}

// NewCamera creates a camera at position looking at target
func NewCamera(fov, near, far float64, position, target geometry.Vector3) *Camera {
	return &Camera{
		FOV:      fov,
		Near:     near,
		Far:      far,
		Aspect:   1,
		Position: position,
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		Width:    1,
		Height:   1,
	}
}

// Basis returns the camera's right, up and forward unit vectors
func (c *Camera) Basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project maps a world point to pixel coordinates and its depth along the
// view axis. ok is false for points outside the near/far range.
func (c *Camera) Project(p geometry.Vector3) (x, y, depth float64, ok bool) {
	right, up, forward := c.Basis()

	rel := p.Sub(c.Position)
	cx := rel.Dot(right)
	cy := rel.Dot(up)
	cz := rel.Dot(forward)
	if cz < c.Near || cz > c.Far {
		return 0, 0, cz, false
	}

	fovScale := math.Tan(c.FOV * math.Pi / 360)
	ndcX := cx / (cz * fovScale * c.Aspect)
	ndcY := cy / (cz * fovScale)

	w, h := float64(c.Width), float64(c.Height)
	return (ndcX + 1) * w / 2, (1 - ndcY) * h / 2, cz, true
}
