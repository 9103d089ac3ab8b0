// Package snapshot renders a model to an image file without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/stl"
	"github.com/philipparndt/stlview/pkg/viewer"
	"golang.org/x/image/draw"
)

// Format is an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	case ".tga":
		return FormatTGA, nil
	}
	return "", fmt.Errorf("unsupported image format %q, use .png, .webp or .tga", filepath.Ext(path))
}

// Options controls the rendered view
type Options struct {
	Width, Height int
	// Supersample renders at this multiple of the size and scales down
	Supersample  int
	ShowFloor    bool
	ShowGrid     bool
	Wireframe    bool
	NormalsDebug bool
}

// DefaultOptions renders an 800x600 image with floor and grid
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Supersample: 2,
		ShowFloor:   true,
		ShowGrid:    true,
	}
}

// Render draws model from the initial camera position
func Render(model *stl.Model, opts Options) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}
	ss := max(opts.Supersample, 1)

	s := scene.New(scene.Options{ShowFloor: opts.ShowFloor, ShowGrid: opts.ShowGrid})
	s.SetModel(model.Name, scene.NewGeometry(model))
	if opts.Wireframe {
		s.ToggleWireframe()
	}
	if opts.NormalsDebug {
		s.ToggleNormals()
	}
	s.Resize(opts.Width*ss, opts.Height*ss)

	img := viewer.Render(s)
	if ss == 1 {
		return img, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes img in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	case FormatTGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// Write encodes img to path, choosing the format from the extension
func Write(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, img, format); err != nil {
		return err
	}
	return f.Close()
}
