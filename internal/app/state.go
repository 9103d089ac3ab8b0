package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/stlview/internal/ingest"
	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/watcher"
)

// CameraState mirrors the scene camera into raylib
type CameraState struct {
	camera rl.Camera3D
	width  int
	height int
}

// meshEntry is the GPU side of one scene object at one revision
type meshEntry struct {
	revision uint64
	mesh     rl.Mesh
	hasMesh  bool
	edges    []scene.Edge
	color    rl.Color // Wireframe color
}

// RenderState holds GPU resources
type RenderState struct {
	material rl.Material
	meshes   map[*scene.Object]*meshEntry
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	isRotating bool
	isPanning  bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher // File watcher for auto-reload
	loader      *ingest.Loader       // Background model loader
	loadingFrom time.Time            // When the pending load started
}

// UIState holds UI-related state
type UIState struct {
	font      rl.Font
	buttons   []button
	status    string
	statusErr bool
}
