package geometry

// Triangle represents a triangular facet in 3D space.
// V1, V2, V3 are wound counter-clockwise when seen from the front.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the normal vector for the triangle
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Flip reverses the winding so the back face becomes the front face
func (t Triangle) Flip() Triangle {
	return Triangle{
		Normal: t.Normal.Mul(-1),
		V1:     t.V1,
		V2:     t.V3,
		V3:     t.V2,
	}
}

// FacesTowards reports whether the front face is visible from the given point
func (t Triangle) FacesTowards(eye Vector3) bool {
	return t.CalculateNormal().Dot(eye.Sub(t.V1)) > 0
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}
