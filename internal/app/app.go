// Package app is the raylib frontend of the viewer.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/internal/config"
	"github.com/philipparndt/stlview/internal/ingest"
	"github.com/philipparndt/stlview/internal/scene"
)

type App struct {
	Scene       *scene.Scene
	Camera      CameraState
	Model       ingest.Current
	Render      RenderState
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}

// Run opens the viewer window and blocks until it is closed.
// file is loaded at startup when not empty.
func Run(cfg config.Config, file string) error {
	rl.SetTraceLogLevel(rl.LogInfo)

	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "stlview")
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	app := &App{
		Scene: scene.New(scene.Options{ShowFloor: cfg.ShowFloor, ShowGrid: cfg.ShowGrid}),
		Render: RenderState{
			material: rl.LoadMaterialDefault(), // vertex colors carry the lighting
			meshes:   make(map[*scene.Object]*meshEntry),
		},
		FileWatch: FileWatchState{loader: ingest.NewLoader()},
		UI:        UIState{font: rl.GetFontDefault()},
	}
	app.setupButtons()
	defer app.FileWatch.loader.Close()

	// Set up file watching
	if cfg.Watch {
		if err := app.setupFileWatcher(cfg.Debounce); err != nil {
			rl.TraceLog(rl.LogWarning, "Failed to set up file watching: %v", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	if file != "" {
		app.requestLoad(ingest.SourceStartup, file)
	}

	bg := app.Scene.Background

	// Main loop
	for !rl.WindowShouldClose() {
		app.syncWindowSize()

		// Apply loaded model if ready (must be on main thread)
		app.applyLoadedModel()

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(bg)

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	// Cleanup
	app.releaseMeshes()
	rl.CloseWindow()
	return nil
}
