package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlview/internal/scene"
)

// zoomStep converts scroll distance to orbit zoom steps
const zoomStep = 0.05

// SceneView is a fyne widget showing a scene. Dragging with the primary
// button orbits, with the secondary button pans, and scrolling zooms.
type SceneView struct {
	widget.BaseWidget
	scene     *scene.Scene
	raster    *canvas.Raster
	dragStart *fyne.Position
	panning   bool
}

// NewSceneView creates a widget for s
func NewSceneView(s *scene.Scene) *SceneView {
	v := &SceneView{scene: s}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// draw is called by fyne with the raster size in pixels
func (v *SceneView) draw(w, h int) image.Image {
	v.scene.Resize(w, h)
	return Render(v.scene)
}

// Tick advances camera damping and repaints when the camera moved.
// Call it from the UI thread once per frame.
func (v *SceneView) Tick() {
	if v.scene.Update() {
		v.raster.Refresh()
	}
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the view usable in tight layouts
func (v *SceneView) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

// MouseDown records which button starts a drag
func (v *SceneView) MouseDown(event *desktop.MouseEvent) {
	v.panning = event.Button == desktop.MouseButtonSecondary
}

// MouseUp ends a pan
func (v *SceneView) MouseUp(*desktop.MouseEvent) {
	v.panning = false
}

// Dragged handles mouse drag events for rotation and panning
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		scale := float64(v.scale())
		dx := float64(event.Position.X-v.dragStart.X) * scale
		dy := float64(event.Position.Y-v.dragStart.Y) * scale
		if v.panning {
			v.scene.Controls.Pan(dx, dy)
		} else {
			v.scene.Controls.Rotate(dx, dy)
		}
		v.Tick()
	}
	v.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (v *SceneView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	v.scene.Controls.Zoom(float64(event.Scrolled.DY) * zoomStep)
	v.Tick()
}

// Refresh repaints the scene after a state change
func (v *SceneView) Refresh() {
	v.raster.Refresh()
	v.BaseWidget.Refresh()
}

// scale converts fyne units to raster pixels
func (v *SceneView) scale() float32 {
	c := fyne.CurrentApp().Driver().CanvasForObject(v)
	if c == nil {
		return 1
	}
	return c.Scale()
}
