package geometry

import "math"

// Euler is a rotation in radians applied in X, Y, Z order
type Euler struct {
	X, Y, Z float64
}

// Transform places an object in world space (scale, then rotate, then translate)
type Transform struct {
	Position Vector3
	Rotation Euler
	Scale    Vector3
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Scale: NewVector3(1, 1, 1)}
}

// IsIdentity reports whether Apply would return its argument unchanged
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Apply maps a local point into world space
func (t Transform) Apply(p Vector3) Vector3 {
	p = Vector3{X: p.X * t.Scale.X, Y: p.Y * t.Scale.Y, Z: p.Z * t.Scale.Z}
	p = t.Rotation.Rotate(p)
	return p.Add(t.Position)
}

// ApplyTriangle maps all three vertices and recomputes the facet normal.
// A mirroring scale flips the winding so that the front face stays the front face.
func (t Transform) ApplyTriangle(tri Triangle) Triangle {
	out := Triangle{
		V1: t.Apply(tri.V1),
		V2: t.Apply(tri.V2),
		V3: t.Apply(tri.V3),
	}
	if t.Scale.X*t.Scale.Y*t.Scale.Z < 0 {
		out = out.Flip()
	}
	out.Normal = out.CalculateNormal()
	return out
}

// Rotate applies the rotation to a vector
func (e Euler) Rotate(v Vector3) Vector3 {
	if e.X != 0 {
		s, c := math.Sincos(e.X)
		v = Vector3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
	}
	if e.Y != 0 {
		s, c := math.Sincos(e.Y)
		v = Vector3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
	}
	if e.Z != 0 {
		s, c := math.Sincos(e.Z)
		v = Vector3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
	}
	return v
}
