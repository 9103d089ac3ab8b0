package scene

import (
	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/philipparndt/stlview/pkg/stl"
)

// Role says which slot of the scene an object occupies
type Role int

const (
	RoleFloor Role = iota
	RoleModel
	RoleBackside
)

// Geometry is an immutable triangle list in object space
type Geometry struct {
	Triangles []geometry.Triangle
	Bounds    geometry.BoundingBox
}

// NewGeometry copies the triangles of a parsed model
func NewGeometry(model *stl.Model) *Geometry {
	g := &Geometry{
		Triangles: make([]geometry.Triangle, len(model.Triangles)),
		Bounds:    model.BoundingBox(),
	}
	copy(g.Triangles, model.Triangles)
	return g
}

// PlaneGeometry returns a width x height quad in the XY plane facing +Z
func PlaneGeometry(width, height float64) *Geometry {
	w, h := width/2, height/2
	a := geometry.NewVector3(-w, -h, 0)
	b := geometry.NewVector3(w, -h, 0)
	c := geometry.NewVector3(w, h, 0)
	d := geometry.NewVector3(-w, h, 0)
	n := geometry.NewVector3(0, 0, 1)

	g := &Geometry{
		Triangles: []geometry.Triangle{
			geometry.NewTriangle(n, a, b, c),
			geometry.NewTriangle(n, a, c, d),
		},
		Bounds: geometry.NewBoundingBox(),
	}
	for _, p := range []geometry.Vector3{a, b, c, d} {
		g.Bounds.Extend(p)
	}
	return g
}

// Clone returns a deep copy
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Triangles: make([]geometry.Triangle, len(g.Triangles)),
		Bounds:    g.Bounds,
	}
	copy(c.Triangles, g.Triangles)
	return c
}

// Object is a mesh placed in the scene
type Object struct {
	Name     string
	Role     Role
	Geometry *Geometry

	transform geometry.Transform
	material  Material
	visible   bool
	revision  uint64
}

func newObject(name string, role Role, geo *Geometry, mat Material) *Object {
	return &Object{
		Name:      name,
		Role:      role,
		Geometry:  geo,
		transform: geometry.IdentityTransform(),
		material:  mat,
		visible:   true,
		revision:  1,
	}
}

// Material returns the current material
func (o *Object) Material() Material {
	return o.material
}

// SetMaterial replaces the material
func (o *Object) SetMaterial(m Material) {
	if o.material == m {
		return
	}
	o.material = m
	o.revision++
}

// Transform returns the placement of the object
func (o *Object) Transform() geometry.Transform {
	return o.transform
}

// SetTransform moves, rotates or scales the object
func (o *Object) SetTransform(t geometry.Transform) {
	if o.transform == t {
		return
	}
	o.transform = t
	o.revision++
}

// Visible reports whether renderers should draw the object
func (o *Object) Visible() bool {
	return o.visible
}

// SetVisible shows or hides the object
func (o *Object) SetVisible(v bool) {
	o.visible = v
}

// Revision changes whenever anything baked into a GPU mesh changes
func (o *Object) Revision() uint64 {
	return o.revision
}

// WorldTriangles returns the triangles transformed into world space
func (o *Object) WorldTriangles() []geometry.Triangle {
	out := make([]geometry.Triangle, len(o.Geometry.Triangles))
	if o.transform.IsIdentity() {
		for i, t := range o.Geometry.Triangles {
			t.Normal = t.CalculateNormal()
			out[i] = t
		}
		return out
	}
	for i, t := range o.Geometry.Triangles {
		out[i] = o.transform.ApplyTriangle(t)
	}
	return out
}
