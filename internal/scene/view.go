package scene

import "math"

// ViewState holds the UI toggles
type ViewState struct {
	ShowFloor    bool
	ShowGrid     bool
	Wireframe    bool
	NormalsDebug bool
}

// ToggleFloor shows or hides the ground plane and returns the new state
func (s *Scene) ToggleFloor() bool {
	s.view.ShowFloor = !s.view.ShowFloor
	s.applyFloorAndGrid()
	return s.view.ShowFloor
}

// ToggleGrid shows or hides both grid helpers and returns the new state
func (s *Scene) ToggleGrid() bool {
	s.view.ShowGrid = !s.view.ShowGrid
	s.applyFloorAndGrid()
	return s.view.ShowGrid
}

// applyFloorAndGrid syncs visibility and lets the camera go below the ground
// only when neither floor nor grid is left as a reference.
func (s *Scene) applyFloorAndGrid() {
	s.Floor.SetVisible(s.view.ShowFloor)
	s.MinorGrid.Visible = s.view.ShowGrid
	s.MajorGrid.Visible = s.view.ShowGrid

	if s.view.ShowFloor || s.view.ShowGrid {
		s.Controls.MaxPolarAngle = math.Pi / 2
	} else {
		s.Controls.MaxPolarAngle = math.Pi
	}
}

// ToggleWireframe switches the model between filled and wireframe rendering.
// Without a model it does nothing and returns false.
func (s *Scene) ToggleWireframe() bool {
	if s.model == nil {
		return false
	}
	s.view.Wireframe = !s.view.Wireframe
	s.applyWireframe()
	return s.view.Wireframe
}

func (s *Scene) applyWireframe() {
	for _, o := range []*Object{s.model, s.backside} {
		if o == nil {
			continue
		}
		m := o.Material()
		m.Wireframe = s.view.Wireframe
		o.SetMaterial(m)
	}
}

// ToggleNormals switches the normals-debug view. When on, front faces of the
// model are blue and a duplicate drawn only from behind shows back faces red.
// Without a model it does nothing and returns false.
func (s *Scene) ToggleNormals() bool {
	if s.model == nil {
		return false
	}
	s.view.NormalsDebug = !s.view.NormalsDebug
	if s.view.NormalsDebug {
		s.enableNormalsDebug()
	} else {
		s.disableNormalsDebug()
	}
	s.applyWireframe()
	return s.view.NormalsDebug
}

func (s *Scene) enableNormalsDebug() {
	s.model.SetMaterial(NormalsFrontMaterial())

	back := newObject(s.model.Name+" (back faces)", RoleBackside, s.model.Geometry.Clone(), NormalsBackMaterial())
	back.SetTransform(s.model.Transform())
	back.SetVisible(s.model.Visible())
	s.backside = back
}

func (s *Scene) disableNormalsDebug() {
	s.backside = nil
	s.model.SetMaterial(ModelMaterial())
}

// ResetCamera returns the camera to its initial position and target
func (s *Scene) ResetCamera() {
	s.Controls.Reset()
}
