package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlview/internal/config"
	"github.com/philipparndt/stlview/internal/ingest"
	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/viewer"
	"github.com/philipparndt/stlview/pkg/watcher"
	"github.com/philipparndt/stlview/version"
	"github.com/spf13/pflag"
)

type App struct {
	window  fyne.Window
	scene   *scene.Scene
	view    *viewer.SceneView
	loader  *ingest.Loader
	watcher *watcher.FileWatcher
	current ingest.Current

	openButton      *widget.Button
	floorButton     *widget.Button
	gridButton      *widget.Button
	wireframeButton *widget.Button
	normalsButton   *widget.Button
	infoLabel       *widget.Label
	statusLabel     *widget.Label
}

func main() {
	flags := config.BindFlags(pflag.CommandLine)
	showVersion := pflag.Bool("version", false, "print the version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("stlview")

	appInstance := &App{
		window: w,
		scene:  scene.New(scene.Options{ShowFloor: cfg.ShowFloor, ShowGrid: cfg.ShowGrid}),
		loader: ingest.NewLoader(),
	}
	defer appInstance.loader.Close()

	appInstance.setupMainUI()

	if cfg.Watch {
		if err := appInstance.setupFileWatcher(cfg.Debounce); err != nil {
			fyne.LogError("Failed to set up file watching", err)
		} else {
			defer appInstance.watcher.Close()
		}
	}

	if path := cfg.StartupPath(pflag.Arg(0)); path != "" {
		appInstance.loader.Load(ingest.Request{Source: ingest.SourceStartup, Path: path})
	}

	go appInstance.tick(time.Second / time.Duration(cfg.TargetFPS))

	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.view = viewer.NewSceneView(a.scene)

	a.openButton = widget.NewButton("Open", a.showFileDialog)
	a.floorButton = widget.NewButton("Floor", func() {
		a.scene.ToggleFloor()
		a.refresh()
	})
	a.gridButton = widget.NewButton("Grid", func() {
		a.scene.ToggleGrid()
		a.refresh()
	})
	a.wireframeButton = widget.NewButton("Wireframe", func() {
		a.scene.ToggleWireframe()
		a.refresh()
	})
	a.normalsButton = widget.NewButton("Normals", func() {
		a.scene.ToggleNormals()
		a.refresh()
	})
	resetButton := widget.NewButton("Reset", func() {
		a.scene.ResetCamera()
		a.refresh()
	})

	a.infoLabel = widget.NewLabel("Drop an STL file here or click Open")
	a.statusLabel = widget.NewLabel("stlview " + version.GetFullVersion())

	toolbar := container.NewHBox(a.openButton, a.floorButton, a.gridButton, a.wireframeButton, a.normalsButton, resetButton)
	footer := container.NewVBox(a.infoLabel, a.statusLabel)

	a.window.SetContent(container.NewBorder(toolbar, footer, nil, nil, a.view))
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		for _, u := range uris {
			if strings.EqualFold(u.Extension(), ".stl") {
				a.loader.Load(ingest.Request{Source: ingest.SourceDrop, Path: u.Path()})
				return
			}
		}
	})
	a.refresh()
}

// refresh syncs button highlights with the view state and repaints
func (a *App) refresh() {
	v := a.scene.View()
	highlight(a.floorButton, v.ShowFloor)
	highlight(a.gridButton, v.ShowGrid)
	highlight(a.wireframeButton, v.Wireframe)
	highlight(a.normalsButton, v.NormalsDebug)
	a.view.Refresh()
}

func highlight(b *widget.Button, on bool) {
	if on {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	b.Refresh()
}

func (a *App) showFileDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loader.Load(ingest.Request{Source: ingest.SourcePicker, Path: reader.URI().Path()})
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".stl", ".STL"}))
	d.Show()
}

// tick drives camera damping and hands finished loads to the UI thread
func (a *App) tick(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		fyne.Do(func() {
			a.applyLoadedModel()
			a.view.Tick()
		})
	}
}

func (a *App) applyLoadedModel() {
	res, ok := a.loader.Poll()
	if !ok {
		return
	}

	if err := a.current.Apply(a.scene, res); err != nil {
		// Keep showing the previous model
		fyne.LogError("Failed to load model", err)
		a.statusLabel.SetText(err.Error())
		return
	}
	a.openButton.SetText(a.current.OpenLabel())

	s := a.current.Summary
	a.infoLabel.SetText(fmt.Sprintf("%s | Triangles: %d | Size: %.2f x %.2f x %.2f | Volume: %.2f",
		s.Name, s.TriangleCount, s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z, s.Volume))
	a.statusLabel.SetText(fmt.Sprintf("Loaded %s in %.2fs", a.current.Label, res.Elapsed.Seconds()))

	if a.watcher != nil {
		if err := a.watcher.Set(res.Request.Path); err != nil {
			fyne.LogError("Failed to watch "+res.Request.Path, err)
		}
	}
	a.refresh()
}

func (a *App) setupFileWatcher(debounce time.Duration) error {
	fw, err := watcher.NewFileWatcher(debounce, func(path string) {
		a.loader.Load(ingest.Request{Source: ingest.SourceReload, Path: path})
	})
	if err != nil {
		return err
	}
	fw.OnError = func(err error) {
		fyne.LogError("Watcher error on "+strings.Join(fw.Files(), ", "), err)
	}

	fw.Start()
	a.watcher = fw
	return nil
}
