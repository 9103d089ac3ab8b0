package scene

import (
	"testing"

	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestProjectTargetToViewportCenter(t *testing.T) {
	s := New(DefaultOptions())
	s.Resize(640, 480)

	x, y, depth, ok := s.Camera.Project(geometry.Vector3{})

	assert.True(t, ok)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 240, y, 1e-9)
	assert.InDelta(t, 30, depth, 1e-9)
}

func TestProjectBehindCamera(t *testing.T) {
	s := New(DefaultOptions())

	_, _, _, ok := s.Camera.Project(InitialCameraPosition.Mul(2))

	assert.False(t, ok)
}

func TestProjectUpIsUp(t *testing.T) {
	s := New(DefaultOptions())
	s.Resize(640, 480)

	_, yLow, _, _ := s.Camera.Project(geometry.NewVector3(0, 0, 0))
	_, yHigh, _, _ := s.Camera.Project(geometry.NewVector3(0, 5, 0))

	assert.Less(t, yHigh, yLow)
}

func TestGridLines(t *testing.T) {
	s := New(DefaultOptions())

	minor := s.MinorGrid.Lines()
	assert.Len(t, minor, 2*257)
	centered := 0
	for _, l := range minor {
		if l.Color == s.MinorGrid.CenterColor {
			centered++
			assert.True(t, l.A.X == 0 || l.A.Z == 0)
		}
		assert.InDelta(t, 0.01, l.A.Y, 1e-12)
	}
	assert.Equal(t, 2, centered)

	for _, l := range s.MajorGrid.Lines() {
		assert.NotEqual(t, s.MajorGrid.CenterColor, l.Color, "odd division count has no center line")
	}
}
