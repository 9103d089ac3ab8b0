package stl

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/stlview/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeCorner = `solid corner
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 1 0 0
    endloop
  endfacet
endsolid corner
`

func encodeBinary(header string, tris []geometry.Triangle) []byte {
	buf := make([]byte, binaryHeaderSize+4+len(tris)*binaryTriangleSize)
	copy(buf, header)
	binary.LittleEndian.PutUint32(buf[binaryHeaderSize:], uint32(len(tris)))
	for i, t := range tris {
		rec := buf[binaryHeaderSize+4+i*binaryTriangleSize:]
		vals := []float64{
			t.Normal.X, t.Normal.Y, t.Normal.Z,
			t.V1.X, t.V1.Y, t.V1.Z,
			t.V2.X, t.V2.Y, t.V2.Z,
			t.V3.X, t.V3.Y, t.V3.Z,
		}
		for j, v := range vals {
			binary.LittleEndian.PutUint32(rec[j*4:], math.Float32bits(float32(v)))
		}
	}
	return buf
}

func TestParseBytesASCII(t *testing.T) {
	model, err := ParseBytes("fallback.stl", []byte(cubeCorner))
	require.NoError(t, err)

	assert.Equal(t, "corner", model.Name)
	require.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, 0, 1), model.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), model.Triangles[1].V3)
}

func TestParseBytesASCIIWithLeadingBytes(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"spaces", "  "},
		{"newline and tab", "\n\t"},
		{"byte order mark", "\xef\xbb\xbf"},
		{"byte order mark and space", "\xef\xbb\xbf "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ParseBytes("x.stl", []byte(tt.prefix+cubeCorner))
			require.NoError(t, err)
			assert.Equal(t, "corner", model.Name)
			assert.Equal(t, 2, model.TriangleCount())
		})
	}
}

func TestParseBytesSolidTooFarIn(t *testing.T) {
	// "solid" past the first five bytes is treated as a binary header
	_, err := ParseBytes("x.stl", []byte("      solid corner\n"))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseBytesBinary(t *testing.T) {
	tris := []geometry.Triangle{
		geometry.NewTriangle(
			geometry.NewVector3(0, 0, 1),
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(2, 0, 0),
			geometry.NewVector3(0, 2, 0),
		),
	}
	model, err := ParseBytes("part.stl", encodeBinary("", tris))
	require.NoError(t, err)

	assert.Equal(t, "part.stl", model.Name, "empty header falls back to the given name")
	require.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, tris[0], model.Triangles[0])
}

func TestParseBytesBinaryWithSolidHeader(t *testing.T) {
	tris := []geometry.Triangle{
		geometry.NewTriangle(
			geometry.Vector3{},
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(0, 1, 0),
		),
	}
	model, err := ParseBytes("x.stl", encodeBinary("solid exported by a CAD tool", tris))
	require.NoError(t, err)

	assert.Equal(t, "solid exported by a CAD tool", model.Name)
	assert.Equal(t, 1, model.TriangleCount())
}

func TestParseBytesEmpty(t *testing.T) {
	_, err := ParseBytes("empty.stl", nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseBytesTruncated(t *testing.T) {
	data := encodeBinary("", []geometry.Triangle{{}, {}})
	_, err := ParseBytes("short.stl", data[:len(data)-10])
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ParseBytes("tiny.stl", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)

	huge := encodeBinary("", []geometry.Triangle{{}})
	binary.LittleEndian.PutUint32(huge[binaryHeaderSize:], math.MaxUint32)
	_, err = ParseBytes("huge.stl", huge)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseBytesInvalidVertex(t *testing.T) {
	_, err := ParseBytes("bad.stl", []byte("solid bad\nfacet normal 0 0 1\nouter loop\nvertex 0 zero 0\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.stl")
	require.NoError(t, os.WriteFile(path, []byte(cubeCorner), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestModelVolume(t *testing.T) {
	// Unit tetrahedron with outward facing triangles
	o := geometry.NewVector3(0, 0, 0)
	x := geometry.NewVector3(1, 0, 0)
	y := geometry.NewVector3(0, 1, 0)
	z := geometry.NewVector3(0, 0, 1)

	model := NewModel("tetra")
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, o, y, x))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, o, x, z))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, o, z, y))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, x, y, z))

	assert.InDelta(t, 1.0/6.0, model.Volume(), 1e-12)
}
