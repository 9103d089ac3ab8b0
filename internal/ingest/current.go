package ingest

import (
	"errors"
	"path/filepath"

	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/analysis"
)

// ErrNoModel is returned for a successful result that carries no model
var ErrNoModel = errors.New("ingest: result has no model")

// Current is the model on screen and the file it came from
type Current struct {
	Path    string
	Label   string // file name shown on the Open button
	Summary *analysis.Summary
}

// Apply puts a finished load into s. A failed load returns its error and
// leaves both s and c untouched, so the previous model stays on screen.
func (c *Current) Apply(s *scene.Scene, res Result) error {
	if res.Err != nil {
		return res.Err
	}
	if res.Model == nil {
		return ErrNoModel
	}

	s.SetModel(res.Model.Name, scene.NewGeometry(res.Model))
	c.Path = res.Request.Path
	c.Label = filepath.Base(res.Request.Path)
	c.Summary = analysis.Summarize(res.Model)
	return nil
}

// OpenLabel is the text of the Open button
func (c *Current) OpenLabel() string {
	if c.Label == "" {
		return "Open"
	}
	return "Open: " + c.Label
}
