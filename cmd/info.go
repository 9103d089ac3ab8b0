package cmd

import (
	"fmt"

	"github.com/philipparndt/stlview/pkg/analysis"
	"github.com/philipparndt/stlview/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display general information about an STL file",
	Long:  "Show dimensions, triangle count, surface area, volume, edge statistics and mesh health.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return err
	}

	s := analysis.Summarize(model)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if s.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", s.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", s.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", s.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n", s.SurfaceArea)
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", s.Volume)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(s.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(s.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(s.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", s.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", s.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n", s.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", s.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", s.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", s.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n\n", s.AvgEdgeLength)

	fmt.Fprintln(out, "Mesh Health:")
	fmt.Fprintf(out, "  Open edges: %d\n", s.OpenEdges)
	fmt.Fprintf(out, "  Inverted facets: %d\n", s.InvertedFacets)
	fmt.Fprintf(out, "  Watertight: %t\n", s.Watertight())
	return nil
}
