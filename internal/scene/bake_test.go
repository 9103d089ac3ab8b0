package scene

import (
	"testing"

	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBakeFollowsMaterialSide(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	n := len(model.Geometry.Triangles)

	front := model.Bake(s.Lights)
	require.Len(t, front, n)
	for i, bt := range front {
		assert.Equal(t, model.Geometry.Triangles[i].V2, bt.V2)
	}

	require.True(t, s.ToggleNormals())
	back := s.Backside().Bake(s.Lights)
	require.Len(t, back, n)
	for i, bt := range back {
		orig := model.Geometry.Triangles[i]
		assert.Equal(t, orig.V3, bt.V2, "back faces are wound the other way")
		assert.Greater(t, bt.Color.R, bt.Color.G, "back faces are red")
	}

	m := model.Material()
	m.Side = DoubleSide
	model.SetMaterial(m)
	assert.Len(t, model.Bake(s.Lights), 2*n)
}

func TestBakeShadesByOrientation(t *testing.T) {
	s := New(DefaultOptions())
	floor := s.Floor.Bake(s.Lights)
	require.Len(t, floor, 2)

	// the rotated floor faces up
	assert.InDelta(t, 1, floor[0].CalculateNormal().Y, 1e-9)
	assert.Equal(t, floor[0].Color, floor[1].Color)
}

func TestEdgesAreUnique(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())

	// a closed cube of 12 triangles has 18 edges
	assert.Len(t, model.Edges(), 18)

	quad := &Geometry{Triangles: []geometry.Triangle{
		geometry.NewTriangle(geometry.Vector3{}, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 1, 0)),
		geometry.NewTriangle(geometry.Vector3{}, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 0), geometry.NewVector3(0, 1, 0)),
	}}
	assert.Len(t, s.SetModel("quad", quad).Edges(), 5)
}
