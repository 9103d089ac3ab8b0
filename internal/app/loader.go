package app

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/internal/ingest"
	"github.com/philipparndt/stlview/pkg/watcher"
	"github.com/sqweek/dialog"
)

// requestLoad starts loading a model in the background
func (app *App) requestLoad(source ingest.Source, path string) {
	app.FileWatch.loader.Load(ingest.Request{Source: source, Path: path})
	app.FileWatch.loadingFrom = time.Now()
	rl.TraceLog(rl.LogInfo, "Loading %s (%s)", path, source)
}

// openFileDialog asks for an STL file with the native picker
func (app *App) openFileDialog() {
	path, err := dialog.File().Filter("STL files", "stl").Title("Open STL file").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			rl.TraceLog(rl.LogWarning, "File dialog failed: %v", err)
			app.setStatus("File dialog failed: "+err.Error(), true)
		}
		return
	}
	app.requestLoad(ingest.SourcePicker, path)
}

// handleDroppedFiles loads the first dropped STL file
func (app *App) handleDroppedFiles() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".stl") {
			app.requestLoad(ingest.SourceDrop, f)
			return
		}
	}
	if len(files) > 0 {
		app.setStatus("Not an STL file: "+filepath.Base(files[0]), true)
	}
}

// applyLoadedModel applies a finished load (must be called on main thread)
func (app *App) applyLoadedModel() {
	res, ok := app.FileWatch.loader.Poll()
	if !ok {
		return
	}

	if err := app.Model.Apply(app.Scene, res); err != nil {
		// Keep showing the previous model
		rl.TraceLog(rl.LogError, "Error loading model: %v", err)
		app.setStatus(err.Error(), true)
		return
	}

	if app.FileWatch.fileWatcher != nil {
		if err := app.FileWatch.fileWatcher.Set(res.Request.Path); err != nil {
			rl.TraceLog(rl.LogWarning, "Failed to watch %s: %v", res.Request.Path, err)
		}
	}

	verb := "Loaded"
	if res.Request.Source == ingest.SourceReload {
		verb = "Reloaded"
	}
	rl.TraceLog(rl.LogInfo, "%s %s: %d triangles in %.2fs", verb, app.Model.Label, res.Model.TriangleCount(), res.Elapsed.Seconds())
	app.setStatus(verb+" "+app.Model.Label, false)
}

// setupFileWatcher reloads the current model whenever its file changes
func (app *App) setupFileWatcher(debounce time.Duration) error {
	fw, err := watcher.NewFileWatcher(debounce, func(path string) {
		// Runs on a timer goroutine; the loader hands the result to the main loop
		rl.TraceLog(rl.LogInfo, "File changed: %s", path)
		app.FileWatch.loader.Load(ingest.Request{Source: ingest.SourceReload, Path: path})
	})
	if err != nil {
		return err
	}
	fw.OnError = func(err error) {
		rl.TraceLog(rl.LogWarning, "Watcher error on %s: %v", strings.Join(fw.Files(), ", "), err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}
