package ingest

import (
	"errors"
	"testing"

	"github.com/philipparndt/stlview/internal/scene"
	"github.com/philipparndt/stlview/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedTriangle(t *testing.T, name string) *stl.Model {
	t.Helper()
	model, err := stl.ParseBytes(name, []byte(triangle))
	require.NoError(t, err)
	return model
}

func TestCurrentApply(t *testing.T) {
	s := scene.New(scene.DefaultOptions())
	var cur Current
	assert.Equal(t, "Open", cur.OpenLabel())

	res := Result{Request: Request{Source: SourcePicker, Path: "/models/a.stl"}, Model: parsedTriangle(t, "a.stl")}
	require.NoError(t, cur.Apply(s, res))

	require.NotNil(t, s.Model())
	assert.Equal(t, "tri", s.Model().Name)
	assert.Equal(t, "/models/a.stl", cur.Path)
	assert.Equal(t, "Open: a.stl", cur.OpenLabel())
	require.NotNil(t, cur.Summary)
	assert.Equal(t, 1, cur.Summary.TriangleCount)
}

func TestCurrentApplyFailureKeepsModel(t *testing.T) {
	s := scene.New(scene.DefaultOptions())
	var cur Current
	require.NoError(t, cur.Apply(s, Result{
		Request: Request{Source: SourceStartup, Path: "a.stl"},
		Model:   parsedTriangle(t, "a.stl"),
	}))
	shown := s.Model()
	before := cur

	parseErr := errors.New("broken file")
	err := cur.Apply(s, Result{Request: Request{Source: SourceDrop, Path: "b.stl"}, Err: parseErr})

	assert.ErrorIs(t, err, parseErr)
	assert.Same(t, shown, s.Model())
	assert.Equal(t, before, cur)
	assert.Equal(t, "Open: a.stl", cur.OpenLabel())
}

func TestCurrentApplyWithoutModel(t *testing.T) {
	s := scene.New(scene.DefaultOptions())
	var cur Current

	err := cur.Apply(s, Result{Request: Request{Path: "a.stl"}})

	assert.ErrorIs(t, err, ErrNoModel)
	assert.Nil(t, s.Model())
	assert.Empty(t, cur.Label)
}
