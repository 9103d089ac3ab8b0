package cmd

import (
	"fmt"

	"github.com/philipparndt/stlview/internal/snapshot"
	"github.com/philipparndt/stlview/pkg/stl"
	"github.com/spf13/cobra"
)

var snapshotOpts struct {
	output      string
	supersample int
	wireframe   bool
	normals     bool
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Render an STL file to a PNG, WebP or TGA image",
	Long: `Render the model from the initial camera position without opening a window.
The image size follows --width and --height; --no-floor and --no-grid apply too.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOpts.output, "output", "o", "", "output image (.png, .webp or .tga)")
	snapshotCmd.Flags().IntVar(&snapshotOpts.supersample, "supersample", 2, "render at this multiple of the size and scale down")
	snapshotCmd.Flags().BoolVar(&snapshotOpts.wireframe, "wireframe", false, "render the model as wireframe")
	snapshotCmd.Flags().BoolVar(&snapshotOpts.normals, "normals", false, "color front faces blue and back faces red")
	_ = snapshotCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := viewerFlags.Resolve()
	if err != nil {
		return err
	}
	if _, err := snapshot.FormatFromPath(snapshotOpts.output); err != nil {
		return err
	}

	model, err := stl.Parse(args[0])
	if err != nil {
		return err
	}

	img, err := snapshot.Render(model, snapshot.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Supersample:  snapshotOpts.supersample,
		ShowFloor:    cfg.ShowFloor,
		ShowGrid:     cfg.ShowGrid,
		Wireframe:    snapshotOpts.wireframe,
		NormalsDebug: snapshotOpts.normals,
	})
	if err != nil {
		return err
	}

	if err := snapshot.Write(snapshotOpts.output, img); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", snapshotOpts.output, cfg.Width, cfg.Height)
	return nil
}
