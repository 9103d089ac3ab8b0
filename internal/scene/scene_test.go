package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeGeometry() *Geometry {
	g := &Geometry{Bounds: geometry.NewBoundingBox()}
	v := func(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }
	quads := [][4]geometry.Vector3{
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // +Z
		{v(1, 0, 0), v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)}, // -Z
		{v(1, 0, 1), v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)}, // +X
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)}, // -X
		{v(0, 1, 1), v(1, 1, 1), v(1, 1, 0), v(0, 1, 0)}, // +Y
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // -Y
	}
	for _, q := range quads {
		g.Triangles = append(g.Triangles,
			geometry.NewTriangle(geometry.Vector3{}, q[0], q[1], q[2]),
			geometry.NewTriangle(geometry.Vector3{}, q[0], q[2], q[3]),
		)
		for _, p := range q {
			g.Bounds.Extend(p)
		}
	}
	return g
}

func countRole(s *Scene, role Role) int {
	n := 0
	for _, o := range s.Objects() {
		if o.Role == role {
			n++
		}
	}
	return n
}

func TestNewSceneBootstrap(t *testing.T) {
	s := New(DefaultOptions())

	assert.Equal(t, Hex(0x424242), s.Background)
	assert.Equal(t, InitialCameraPosition, s.Camera.Position)
	assert.Equal(t, geometry.Vector3{}, s.Controls.Target)
	assert.Equal(t, 40.0, s.Camera.FOV)
	assert.Equal(t, 70.0, s.Controls.MaxDistance)
	assert.InDelta(t, math.Pi/2, s.Controls.MaxPolarAngle, 1e-12)

	require.Len(t, s.Objects(), 1)
	assert.Equal(t, RoleFloor, s.Objects()[0].Role)
	assert.True(t, s.Floor.Visible())
	assert.Len(t, s.Grids(), 2)
	assert.Nil(t, s.Model())
	assert.Nil(t, s.Backside())
}

func TestFloorFacesUp(t *testing.T) {
	s := New(DefaultOptions())

	for _, tri := range s.Floor.WorldTriangles() {
		assert.True(t, tri.Normal.Near(geometry.NewVector3(0, 1, 0), 1e-9), "normal %v", tri.Normal)
		assert.InDelta(t, 0, tri.V1.Y, 1e-9)
	}
}

func TestNewSceneHonoursOptions(t *testing.T) {
	s := New(Options{ShowFloor: false, ShowGrid: false})

	assert.False(t, s.Floor.Visible())
	assert.Empty(t, s.Grids())
	assert.InDelta(t, math.Pi, s.Controls.MaxPolarAngle, 1e-12)
}

func TestSetModelKeepsExactlyOneModel(t *testing.T) {
	s := New(DefaultOptions())

	for i := 0; i < 5; i++ {
		m := s.SetModel("cube", cubeGeometry())
		assert.Same(t, m, s.Model())
		assert.Equal(t, 1, countRole(s, RoleModel))
	}

	s.ToggleNormals()
	s.SetModel("again", cubeGeometry())
	assert.Equal(t, 1, countRole(s, RoleModel))
	assert.Equal(t, 1, countRole(s, RoleBackside))
	assert.Equal(t, "again", s.Model().Name)
}

func TestSetModelCarriesViewFlags(t *testing.T) {
	s := New(DefaultOptions())
	s.SetModel("first", cubeGeometry())
	require.True(t, s.ToggleWireframe())
	require.True(t, s.ToggleNormals())

	s.SetModel("second", cubeGeometry())

	model := s.Model()
	back := s.Backside()
	require.NotNil(t, back)
	assert.True(t, model.Material().Wireframe)
	assert.True(t, back.Material().Wireframe)
	assert.Equal(t, FrontSide, model.Material().Side)
	assert.Equal(t, BackSide, back.Material().Side)
	assert.Equal(t, "second (back faces)", back.Name)
}

func TestToggleFloorTwiceRestores(t *testing.T) {
	s := New(DefaultOptions())
	before := s.View()

	assert.False(t, s.ToggleFloor())
	assert.False(t, s.Floor.Visible())
	assert.True(t, s.ToggleFloor())

	assert.Equal(t, before, s.View())
	assert.True(t, s.Floor.Visible())
	assert.InDelta(t, math.Pi/2, s.Controls.MaxPolarAngle, 1e-12)
}

func TestToggleGridTwiceRestores(t *testing.T) {
	s := New(DefaultOptions())
	before := s.View()

	assert.False(t, s.ToggleGrid())
	assert.False(t, s.MinorGrid.Visible)
	assert.False(t, s.MajorGrid.Visible)
	assert.True(t, s.ToggleGrid())

	assert.Equal(t, before, s.View())
	assert.Len(t, s.Grids(), 2)
}

func TestPolarLimitNeedsBothReferencesHidden(t *testing.T) {
	s := New(DefaultOptions())

	s.ToggleFloor()
	assert.InDelta(t, math.Pi/2, s.Controls.MaxPolarAngle, 1e-12, "grid still visible")

	s.ToggleGrid()
	assert.InDelta(t, math.Pi, s.Controls.MaxPolarAngle, 1e-12)

	s.ToggleFloor()
	assert.InDelta(t, math.Pi/2, s.Controls.MaxPolarAngle, 1e-12, "floor visible again")
}

func TestToggleWireframeWithoutModelIsNoop(t *testing.T) {
	s := New(DefaultOptions())
	before := s.View()

	assert.NotPanics(t, func() {
		assert.False(t, s.ToggleWireframe())
	})
	assert.Equal(t, before, s.View())
	assert.Nil(t, s.Model())
}

func TestToggleNormalsWithoutModelIsNoop(t *testing.T) {
	s := New(DefaultOptions())

	assert.False(t, s.ToggleNormals())
	assert.False(t, s.View().NormalsDebug)
	assert.Len(t, s.Objects(), 1)
}

func TestToggleWireframeTwiceRestores(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	original := model.Material()

	assert.True(t, s.ToggleWireframe())
	assert.True(t, model.Material().Wireframe)
	assert.False(t, s.ToggleWireframe())

	assert.Equal(t, original, model.Material())
	assert.False(t, s.View().Wireframe)
}

func TestToggleNormalsOnOffLeavesSingleModel(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	original := model.Material()

	require.True(t, s.ToggleNormals())
	back := s.Backside()
	require.NotNil(t, back)
	assert.Equal(t, NormalsFrontMaterial(), model.Material())
	assert.Equal(t, NormalsBackMaterial(), back.Material())
	assert.Len(t, s.Objects(), 3)
	assert.NotSame(t, model.Geometry, back.Geometry, "duplicate uses cloned geometry")
	assert.Equal(t, model.Geometry.Triangles, back.Geometry.Triangles)

	require.False(t, s.ToggleNormals())
	assert.Nil(t, s.Backside())
	assert.Equal(t, 1, countRole(s, RoleModel))
	assert.Equal(t, 0, countRole(s, RoleBackside))
	assert.Same(t, model, s.Model())
	assert.Equal(t, original, model.Material())
}

func TestNormalsDuplicateMatchesTransform(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	tr := geometry.Transform{
		Position: geometry.NewVector3(1, 2, 3),
		Rotation: geometry.Euler{X: 0.5},
		Scale:    geometry.NewVector3(2, 2, 2),
	}
	model.SetTransform(tr)

	s.ToggleNormals()

	assert.Equal(t, tr, s.Backside().Transform())
}

func TestWireframeAndNormalsPairsCommute(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	original := model.Material()

	s.ToggleWireframe()
	s.ToggleNormals()
	assert.True(t, s.Backside().Material().Wireframe)
	s.ToggleWireframe()
	assert.False(t, s.Backside().Material().Wireframe)
	s.ToggleNormals()

	assert.Equal(t, original, model.Material())
	assert.Equal(t, ViewState{ShowFloor: true, ShowGrid: true}, s.View())
}

func TestMaterialChangeBumpsRevision(t *testing.T) {
	s := New(DefaultOptions())
	model := s.SetModel("cube", cubeGeometry())
	rev := model.Revision()

	s.ToggleWireframe()
	assert.Greater(t, model.Revision(), rev)

	rev = model.Revision()
	model.SetMaterial(model.Material())
	assert.Equal(t, rev, model.Revision(), "same material does not invalidate")
}

func TestResetCameraRestoresInitialView(t *testing.T) {
	s := New(DefaultOptions())
	s.Resize(800, 600)

	s.Controls.Rotate(120, -40)
	s.Controls.Pan(30, 15)
	s.Controls.Zoom(-4)
	for i := 0; i < 30; i++ {
		s.Update()
	}
	require.NotEqual(t, InitialCameraPosition, s.Camera.Position)

	s.ResetCamera()

	assert.Equal(t, InitialCameraPosition, s.Camera.Position)
	assert.Equal(t, geometry.Vector3{}, s.Controls.Target)
	assert.Equal(t, geometry.Vector3{}, s.Camera.Target)

	// pending damped motion was dropped
	s.Update()
	assert.True(t, s.Camera.Position.Near(InitialCameraPosition, 1e-9))
}

func TestResizeKeepsAspect(t *testing.T) {
	s := New(DefaultOptions())

	for _, size := range [][2]int{{1280, 720}, {300, 900}, {1, 1}} {
		s.Resize(size[0], size[1])
		assert.Equal(t, float64(size[0])/float64(size[1]), s.Camera.Aspect)
		assert.Equal(t, size[0], s.Camera.Width)
		assert.Equal(t, size[1], s.Camera.Height)
	}

	s.Resize(0, 0)
	assert.Equal(t, 1, s.Camera.Width, "minimized window is ignored")
}
