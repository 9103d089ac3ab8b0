package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/version"
)

const (
	buttonHeight  = float32(28)
	buttonPadding = float32(12)
	buttonGap     = float32(6)
	fontSize      = float32(16)
	fontSizeSmall = float32(14)
	lineHeight    = float32(20)
)

var (
	buttonColor       = rl.NewColor(40, 44, 52, 220)
	buttonHoverColor  = rl.NewColor(60, 66, 78, 230)
	buttonActiveColor = rl.NewColor(30, 110, 200, 230)
)

// button is a clickable HUD control with a keyboard shortcut
type button struct {
	label  func() string
	active func() bool
	action func()
	key    int32
	bounds rl.Rectangle
}

// setupButtons creates the toolbar in display order
func (app *App) setupButtons() {
	app.UI.buttons = []button{
		{
			label:  app.Model.OpenLabel,
			action: app.openFileDialog,
			key:    rl.KeyO,
		},
		{
			label:  func() string { return "Floor" },
			active: func() bool { return app.Scene.View().ShowFloor },
			action: func() { app.Scene.ToggleFloor() },
			key:    rl.KeyF,
		},
		{
			label:  func() string { return "Grid" },
			active: func() bool { return app.Scene.View().ShowGrid },
			action: func() { app.Scene.ToggleGrid() },
			key:    rl.KeyG,
		},
		{
			label:  func() string { return "Wireframe" },
			active: func() bool { return app.Scene.View().Wireframe },
			action: func() { app.Scene.ToggleWireframe() },
			key:    rl.KeyW,
		},
		{
			label:  func() string { return "Normals" },
			active: func() bool { return app.Scene.View().NormalsDebug },
			action: func() { app.Scene.ToggleNormals() },
			key:    rl.KeyN,
		},
		{
			label:  func() string { return "Reset" },
			action: app.resetCameraView,
			key:    rl.KeyHome,
		},
	}
}

// layoutButtons places the toolbar along the top edge
func (app *App) layoutButtons() {
	x := float32(10)
	for i := range app.UI.buttons {
		b := &app.UI.buttons[i]
		size := rl.MeasureTextEx(app.UI.font, b.label(), fontSize, 1)
		b.bounds = rl.Rectangle{X: x, Y: 10, Width: size.X + 2*buttonPadding, Height: buttonHeight}
		x += b.bounds.Width + buttonGap
	}
}

// buttonAt returns the toolbar button under pos, or nil
func (app *App) buttonAt(pos rl.Vector2) *button {
	for i := range app.UI.buttons {
		if rl.CheckCollisionPointRec(pos, app.UI.buttons[i].bounds) {
			return &app.UI.buttons[i]
		}
	}
	return nil
}

func (app *App) setStatus(text string, isErr bool) {
	app.UI.status = text
	app.UI.statusErr = isErr
}

// drawUI draws the user interface
func (app *App) drawUI() {
	app.layoutButtons()
	mouse := rl.GetMousePosition()

	// === TOOLBAR ===
	for i := range app.UI.buttons {
		b := &app.UI.buttons[i]
		bg := buttonColor
		if b.active != nil && b.active() {
			bg = buttonActiveColor
		} else if rl.CheckCollisionPointRec(mouse, b.bounds) {
			bg = buttonHoverColor
		}
		rl.DrawRectangleRec(b.bounds, bg)
		rl.DrawRectangleLinesEx(b.bounds, 1, rl.Gray)

		size := rl.MeasureTextEx(app.UI.font, b.label(), fontSize, 1)
		pos := rl.Vector2{X: b.bounds.X + buttonPadding, Y: b.bounds.Y + (buttonHeight-size.Y)/2}
		rl.DrawTextEx(app.UI.font, b.label(), pos, fontSize, 1, rl.White)
	}

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Loading indicator
	if app.FileWatch.loader.Pending() {
		elapsed := time.Since(app.FileWatch.loadingFrom).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[int(elapsed*10)%len(spinnerChars)], elapsed)

		boxWidth := float32(220)
		boxHeight := float32(36)
		boxX := screenWidth - boxWidth - 20
		boxY := float32(10)
		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)

		textSize := rl.MeasureTextEx(app.UI.font, loadingText, fontSize, 1)
		rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{X: boxX + (boxWidth-textSize.X)/2, Y: boxY + (boxHeight-textSize.Y)/2}, fontSize, 1, rl.Yellow)
	}

	// === MODEL ===
	y := 10 + buttonHeight + 14
	if s := app.Model.Summary; s != nil {
		rl.DrawTextEx(app.UI.font, "Model:", rl.Vector2{X: 10, Y: y}, fontSize, 1, rl.Yellow)
		y += lineHeight
		lines := []string{
			fmt.Sprintf("  Name: %s", s.Name),
			fmt.Sprintf("  Triangles: %d", s.TriangleCount),
			fmt.Sprintf("  Size: %.2f x %.2f x %.2f", s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z),
			fmt.Sprintf("  Surface Area: %.2f", s.SurfaceArea),
			fmt.Sprintf("  Volume: %.2f", s.Volume),
		}
		for _, line := range lines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSizeSmall, 1, rl.White)
			y += lineHeight
		}
		if !s.Watertight() {
			rl.DrawTextEx(app.UI.font, fmt.Sprintf("  Open edges: %d", s.OpenEdges), rl.Vector2{X: 10, Y: y}, fontSizeSmall, 1, rl.Orange)
			y += lineHeight
		}
	} else {
		rl.DrawTextEx(app.UI.font, "Drop an STL file here or press O to open one", rl.Vector2{X: 10, Y: y}, fontSize, 1, rl.LightGray)
	}

	// === STATUS ===
	hint := "Left Drag: Rotate | Right Drag: Pan | Wheel: Zoom | O F G W N Home"
	rl.DrawTextEx(app.UI.font, hint, rl.Vector2{X: 10, Y: screenHeight - 2*lineHeight - 4}, fontSizeSmall, 1, rl.LightGray)

	if app.UI.status != "" {
		col := rl.LightGray
		if app.UI.statusErr {
			col = rl.NewColor(255, 100, 100, 255)
		}
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: 10, Y: screenHeight - lineHeight - 4}, fontSizeSmall, 1, col)
	}

	versionText := "stlview " + version.GetFullVersion()
	size := rl.MeasureTextEx(app.UI.font, versionText, fontSizeSmall, 1)
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: screenWidth - size.X - 10, Y: screenHeight - lineHeight - 4}, fontSizeSmall, 1, rl.Gray)
}
