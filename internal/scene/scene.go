// Package scene holds the viewer's scene graph and view state.
//
// Everything here runs on the UI thread. Renderers read the scene each frame;
// the toggle methods in view.go are the only way the view state changes.
package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/stlview/pkg/geometry"
)

const (
	floorSize = 25.6

	cameraFOV  = 40
	cameraNear = 0.1
	cameraFar  = 1000
)

// InitialCameraPosition is where the camera starts and where ResetCamera returns it
var InitialCameraPosition = geometry.NewVector3(20, 10, 20)

// Options selects the initial view state
type Options struct {
	ShowFloor bool
	ShowGrid  bool
}

// DefaultOptions shows both floor and grid
func DefaultOptions() Options {
	return Options{ShowFloor: true, ShowGrid: true}
}

// Scene owns every visible object. The model and its normals-debug duplicate
// live in dedicated slots; loading a model replaces the slot. Renderers that
// cache per-object resources release whatever is no longer in Objects().
type Scene struct {
	Background color.RGBA
	Camera     *Camera
	Controls   *OrbitControls
	Lights     Lights
	Floor      *Object
	MinorGrid  *GridHelper
	MajorGrid  *GridHelper

	model    *Object
	backside *Object
	view     ViewState
}

// New builds the camera, lights, floor and grids
func New(opts Options) *Scene {
	camera := NewCamera(cameraFOV, cameraNear, cameraFar, InitialCameraPosition, geometry.Vector3{})

	controls := NewOrbitControls(camera)
	controls.EnableDamping = true
	controls.DampingFactor = 0.25
	controls.ScreenSpacePanning = false
	controls.MinDistance = 1
	controls.MaxDistance = 70
	controls.MaxPolarAngle = math.Pi / 2

	floor := newObject("floor", RoleFloor, PlaneGeometry(floorSize, floorSize), FloorMaterial())
	t := geometry.IdentityTransform()
	t.Rotation.X = -math.Pi / 2
	floor.SetTransform(t)

	s := &Scene{
		Background: Hex(0x424242),
		Camera:     camera,
		Controls:   controls,
		Lights:     DefaultLights(),
		Floor:      floor,
		MinorGrid: &GridHelper{
			Size:        floorSize,
			Divisions:   256,
			CenterColor: Hex(0xff0000),
			LineColor:   Hex(0x404040),
			Height:      0.01,
		},
		MajorGrid: &GridHelper{
			Size:        25,
			Divisions:   25,
			CenterColor: Hex(0xff0000),
			LineColor:   Hex(0x808080),
			Height:      0.02,
		},
		view: ViewState{ShowFloor: opts.ShowFloor, ShowGrid: opts.ShowGrid},
	}
	s.applyFloorAndGrid()
	return s
}

// Model returns the loaded model, or nil
func (s *Scene) Model() *Object {
	return s.model
}

// Backside returns the normals-debug duplicate, or nil
func (s *Scene) Backside() *Object {
	return s.backside
}

// View returns a copy of the current view state
func (s *Scene) View() ViewState {
	return s.view
}

// Objects lists the scene graph members in draw order
func (s *Scene) Objects() []*Object {
	objs := []*Object{s.Floor}
	if s.model != nil {
		objs = append(objs, s.model)
	}
	if s.backside != nil {
		objs = append(objs, s.backside)
	}
	return objs
}

// Grids returns the visible grid helpers
func (s *Scene) Grids() []*GridHelper {
	var grids []*GridHelper
	for _, g := range []*GridHelper{s.MinorGrid, s.MajorGrid} {
		if g.Visible {
			grids = append(grids, g)
		}
	}
	return grids
}

// SetModel replaces the current model. Any normals-debug duplicate of the old
// model is dropped, and the current wireframe and normals-debug flags are
// applied to the new one.
func (s *Scene) SetModel(name string, geo *Geometry) *Object {
	s.backside = nil

	s.model = newObject(name, RoleModel, geo, ModelMaterial())
	if s.view.NormalsDebug {
		s.enableNormalsDebug()
	}
	s.applyWireframe()
	return s.model
}

// Resize keeps the camera aspect and viewport in sync with the window.
// Non-positive sizes, as reported for minimized windows, are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Camera.Width = width
	s.Camera.Height = height
	s.Camera.Aspect = float64(width) / float64(height)
}

// Update advances the orbit controls by one frame
func (s *Scene) Update() bool {
	return s.Controls.Update()
}
