package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/philipparndt/stlview/pkg/stl"
)

// Summary contains the statistics shown by the info command and the viewer HUD
type Summary struct {
	Name          string
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int // unique edges
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	// InvertedFacets counts triangles whose stored normal points against
	// the normal implied by their winding.
	InvertedFacets int
	// OpenEdges counts edges used by exactly one triangle. Zero for a closed mesh.
	OpenEdges int
}

// Watertight reports whether every edge is shared by at least two triangles
func (s *Summary) Watertight() bool {
	return s.TriangleCount > 0 && s.OpenEdges == 0
}

type edgeKey [2]geometry.Vector3

func newEdgeKey(a, b geometry.Vector3) edgeKey {
	if less(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func less(a, b geometry.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Summarize performs the analysis on an STL model
func Summarize(model *stl.Model) *Summary {
	result := &Summary{
		Name:          model.Name,
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
	}
	if result.TriangleCount == 0 {
		return result
	}

	result.Dimensions = result.BoundingBox.Size()

	edgeUse := make(map[edgeKey]int, result.TriangleCount*3/2)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		if stored := triangle.Normal; stored.Length() > 0 && stored.Dot(triangle.CalculateNormal()) < 0 {
			result.InvertedFacets++
		}

		for _, edge := range [3][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		} {
			key := newEdgeKey(edge[0], edge[1])
			edgeUse[key]++
			if edgeUse[key] > 1 {
				continue
			}

			length := edge[0].Distance(edge[1])
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(edgeUse)
	for _, n := range edgeUse {
		if n == 1 {
			result.OpenEdges++
		}
	}
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
