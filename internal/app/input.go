package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	// Keyboard shortcuts mirror the toolbar
	for i := range app.UI.buttons {
		if rl.IsKeyPressed(app.UI.buttons[i].key) {
			app.UI.buttons[i].action()
		}
	}

	mouse := rl.GetMousePosition()

	// Clicks on the toolbar never reach the camera
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if b := app.buttonAt(mouse); b != nil {
			b.action()
			return
		}
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
		app.Interaction.isRotating = !shiftPressed
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		if app.buttonAt(mouse) == nil {
			app.Interaction.isPanning = true
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.isRotating = false
		app.Interaction.isPanning = false
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) || rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		app.Interaction.isPanning = false
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		switch {
		case app.Interaction.isPanning:
			app.Scene.Controls.Pan(float64(delta.X), float64(delta.Y))
		case app.Interaction.isRotating:
			app.Scene.Controls.Rotate(float64(delta.X), float64(delta.Y))
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Scene.Controls.Zoom(float64(wheel))
	}

	app.handleDroppedFiles()
}
