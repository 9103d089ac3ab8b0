package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const size = 120

func newScene(opts scene.Options) *scene.Scene {
	s := scene.New(opts)
	s.Resize(size, size)
	return s
}

// panel returns one triangle through the origin, turned so that its front
// face is (or is not) visible from eye
func panel(eye geometry.Vector3, facing bool) *scene.Geometry {
	tri := geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(-1, -1, 1),
		geometry.NewVector3(1, -1, -1),
		geometry.NewVector3(0, 1, 0),
	)
	tri.Normal = tri.CalculateNormal()
	if tri.FacesTowards(eye) != facing {
		tri = tri.Flip()
	}

	g := &scene.Geometry{Triangles: []geometry.Triangle{tri}, Bounds: geometry.NewBoundingBox()}
	for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
		g.Bounds.Extend(v)
	}
	return g
}

func center(img *image.RGBA) color.RGBA {
	return img.RGBAAt(size/2, size/2)
}

func countNot(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != c {
				n++
			}
		}
	}
	return n
}

func TestRenderEmptySceneIsBackground(t *testing.T) {
	s := newScene(scene.Options{})
	img := Render(s)

	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
	assert.Zero(t, countNot(img, s.Background))
}

func TestRenderFloorVisibility(t *testing.T) {
	s := newScene(scene.Options{ShowFloor: true})
	assert.NotEqual(t, s.Background, center(Render(s)))

	s.ToggleFloor()
	assert.Equal(t, s.Background, center(Render(s)))
}

func TestRenderGridDrawsLines(t *testing.T) {
	s := newScene(scene.Options{ShowGrid: true})
	img := Render(s)

	assert.NotZero(t, countNot(img, s.Background))
	assert.Less(t, countNot(img, scene.Hex(0xff0000)), size*size, "center lines are red")
}

func TestRenderCullsBackFaces(t *testing.T) {
	s := newScene(scene.Options{})
	s.SetModel("panel", panel(s.Camera.Position, false))

	assert.Equal(t, s.Background, center(Render(s)))
}

func TestRenderFrontFace(t *testing.T) {
	s := newScene(scene.Options{})
	s.SetModel("panel", panel(s.Camera.Position, true))

	c := center(Render(s))
	assert.NotEqual(t, s.Background, c)
	assert.Equal(t, c.R, c.G, "the default material is gray")
}

func TestRenderNormalsDebugColors(t *testing.T) {
	s := newScene(scene.Options{})
	s.SetModel("back", panel(s.Camera.Position, false))
	require.True(t, s.ToggleNormals())

	c := center(Render(s))
	assert.Greater(t, int(c.R), 100)
	assert.Less(t, int(c.G), 60)
	assert.Less(t, int(c.B), 60)

	s.SetModel("front", panel(s.Camera.Position, true))
	c = center(Render(s))
	assert.Greater(t, int(c.B), 100)
	assert.Less(t, int(c.R), 60)
}

func TestRenderWireframeLeavesInteriorEmpty(t *testing.T) {
	s := newScene(scene.Options{})
	s.SetModel("panel", panel(s.Camera.Position, true))
	require.True(t, s.ToggleWireframe())

	img := Render(s)
	assert.Equal(t, s.Background, center(img))
	assert.NotZero(t, countNot(img, s.Background))
}

func TestRenderFollowsResize(t *testing.T) {
	s := newScene(scene.DefaultOptions())
	s.Resize(64, 32)

	assert.Equal(t, image.Rect(0, 0, 64, 32), Render(s).Bounds())
}

func TestRenderCloseUpClipsFloor(t *testing.T) {
	s := newScene(scene.Options{ShowFloor: true})
	s.Controls.Zoom(200)
	s.Update()

	// corners of the floor are behind the camera now
	assert.NotZero(t, countNot(Render(s), s.Background))
}
