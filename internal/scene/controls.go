package scene

import (
	"math"

	"github.com/philipparndt/stlview/pkg/geometry"
)

const controlsEPS = 1e-6

type spherical struct {
	radius, phi, theta float64
}

func sphericalFromVector(v geometry.Vector3) spherical {
	s := spherical{radius: v.Length()}
	if s.radius == 0 {
		return s
	}
	s.theta = math.Atan2(v.X, v.Z)
	s.phi = math.Acos(math.Max(-1, math.Min(1, v.Y/s.radius)))
	return s
}

func (s spherical) vector() geometry.Vector3 {
	sinPhi := math.Sin(s.phi)
	return geometry.NewVector3(
		s.radius*sinPhi*math.Sin(s.theta),
		s.radius*math.Cos(s.phi),
		s.radius*sinPhi*math.Cos(s.theta),
	)
}

// OrbitControls rotates, zooms and pans a camera around a target point.
// Input calls only accumulate motion; Update applies it, so it must run once per frame.
type OrbitControls struct {
	Camera *Camera
	Target geometry.Vector3

	EnableDamping      bool
	DampingFactor      float64
	ScreenSpacePanning bool

	MinDistance, MaxDistance     float64
	MinPolarAngle, MaxPolarAngle float64

	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	delta     spherical
	scale     float64
	panOffset geometry.Vector3

	savedPosition geometry.Vector3
	savedTarget   geometry.Vector3
}

// NewOrbitControls attaches controls to a camera and records its current
// position and target for Reset.
func NewOrbitControls(camera *Camera) *OrbitControls {
	c := &OrbitControls{
		Camera:        camera,
		Target:        camera.Target,
		DampingFactor: 0.05,
		MaxDistance:   math.Inf(1),
		MaxPolarAngle: math.Pi,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		scale:         1,
	}
	c.SaveState()
	return c
}

// SaveState records the current camera position and target as the reset point
func (c *OrbitControls) SaveState() {
	c.savedPosition = c.Camera.Position
	c.savedTarget = c.Target
}

// Reset restores the saved camera position and target and drops pending motion
func (c *OrbitControls) Reset() {
	c.Target = c.savedTarget
	c.Camera.Position = c.savedPosition
	c.Camera.Target = c.savedTarget
	c.delta = spherical{}
	c.panOffset = geometry.Vector3{}
	c.scale = 1
}

// Rotate orbits by a pointer movement in pixels
func (c *OrbitControls) Rotate(dx, dy float64) {
	h := float64(max(c.Camera.Height, 1))
	c.delta.theta -= 2 * math.Pi * dx / h * c.RotateSpeed
	c.delta.phi -= 2 * math.Pi * dy / h * c.RotateSpeed
}

// Zoom dollies in for positive steps and out for negative ones
func (c *OrbitControls) Zoom(steps float64) {
	c.scale *= math.Pow(0.95, c.ZoomSpeed*steps)
}

// Pan moves the target by a pointer movement in pixels
func (c *OrbitControls) Pan(dx, dy float64) {
	offset := c.Camera.Position.Sub(c.Target)
	// distance covered by half the viewport height at the target plane
	targetDistance := offset.Length() * math.Tan(c.Camera.FOV*math.Pi/360)
	h := float64(max(c.Camera.Height, 1))

	right, up, _ := c.Camera.Basis()
	if !c.ScreenSpacePanning {
		// move along the ground, keeping the target height
		up = c.Camera.Up.Cross(right).Normalize()
	}

	c.panOffset = c.panOffset.
		Add(right.Mul(-2 * dx * targetDistance / h * c.PanSpeed)).
		Add(up.Mul(2 * dy * targetDistance / h * c.PanSpeed))
}

// Update applies accumulated motion and clamps to the configured limits.
// It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	before := c.Camera.Position
	offset := c.Camera.Position.Sub(c.Target)
	s := sphericalFromVector(offset)

	if c.EnableDamping {
		s.theta += c.delta.theta * c.DampingFactor
		s.phi += c.delta.phi * c.DampingFactor
	} else {
		s.theta += c.delta.theta
		s.phi += c.delta.phi
	}

	s.phi = math.Max(c.MinPolarAngle, math.Min(c.MaxPolarAngle, s.phi))
	s.phi = math.Max(controlsEPS, math.Min(math.Pi-controlsEPS, s.phi))
	s.radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, s.radius*c.scale))

	if c.EnableDamping {
		c.Target = c.Target.Add(c.panOffset.Mul(c.DampingFactor))
	} else {
		c.Target = c.Target.Add(c.panOffset)
	}

	c.Camera.Position = c.Target.Add(s.vector())
	c.Camera.Target = c.Target

	if c.EnableDamping {
		c.delta.theta *= 1 - c.DampingFactor
		c.delta.phi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.delta = spherical{}
		c.panOffset = geometry.Vector3{}
	}
	c.scale = 1

	return !before.Near(c.Camera.Position, controlsEPS)
}
