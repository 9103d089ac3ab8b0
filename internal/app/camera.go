package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/pkg/geometry"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// syncWindowSize keeps the scene viewport in sync with the window
func (app *App) syncWindowSize() {
	if app.Camera.width != 0 && !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	app.Camera.width, app.Camera.height = w, h
	app.Scene.Resize(w, h)
}

// updateCamera applies orbit damping and copies the scene camera into raylib.
// Camera.Near and Camera.Far are not copied: raylib culls with its own
// compile-time RL_CULL_DISTANCE_NEAR and RL_CULL_DISTANCE_FAR. The scene's
// planes only bind the software renderer and snapshots.
func (app *App) updateCamera() {
	app.Scene.Update()

	c := app.Scene.Camera
	app.Camera.camera = rl.Camera3D{
		Position:   toRaylib(c.Position),
		Target:     toRaylib(c.Target),
		Up:         toRaylib(c.Up),
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Scene.ResetCamera()
	app.setStatus("Camera reset", false)
}
