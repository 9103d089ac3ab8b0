package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/stlview/pkg/geometry"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50
)

var (
	// ErrEmpty is returned for zero-byte input
	ErrEmpty = errors.New("stl: empty input")
	// ErrTruncated is returned when a binary file ends before its declared triangle count
	ErrTruncated = errors.New("stl: truncated binary data")
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	model, err := ParseBytes(filepath.Base(filename), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return model, nil
}

// ParseBytes parses in-memory STL data. name is used when the file carries no name of its own.
func ParseBytes(name string, data []byte) (*Model, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	var (
		model *Model
		err   error
	)
	if text, ok := asciiText(data); ok {
		model, err = parseASCII(text)
	} else {
		model, err = parseBinary(data)
	}
	if err != nil {
		return nil, err
	}

	if model.Name == "" {
		model.Name = name
	}
	return model, nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// asciiText reports whether data is an ASCII STL and returns it without a
// leading byte order mark. Some exporters pad "solid" with a few bytes, so it
// may start anywhere in the first five. Binary files whose header also starts
// with "solid" are told apart by a size that matches the binary layout.
func asciiText(data []byte) ([]byte, bool) {
	if binarySize(data) == uint64(len(data)) {
		return nil, false
	}
	text := bytes.TrimPrefix(data, utf8BOM)
	head := text[:min(len(text), 4+len("solid"))]
	if !bytes.Contains(head, []byte("solid")) {
		return nil, false
	}
	return text, true
}

// binarySize is the file size implied by the triangle count in a binary header,
// or 0 when data is too short to carry one
func binarySize(data []byte) uint64 {
	if len(data) < binaryHeaderSize+4 {
		return 0
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return binaryHeaderSize + 4 + uint64(count)*binaryTriangleSize
}

// parseASCII parses an ASCII STL file
func parseASCII(data []byte) (*Model, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseFloats(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
				}
				currentNormal = n
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
			currentNormal = geometry.Vector3{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseFloats(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*Model, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, fmt.Errorf("header is %d bytes: %w", len(data), ErrTruncated)
	}

	model := NewModel("")

	// Extract name from header (if present)
	header := data[:binaryHeaderSize]
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	declared := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	body := data[binaryHeaderSize+4:]
	if uint64(len(data)) < binarySize(data) {
		return nil, fmt.Errorf("declared %d triangles, found %d: %w",
			declared, len(body)/binaryTriangleSize, ErrTruncated)
	}
	triangleCount := int(declared)

	model.Triangles = make([]geometry.Triangle, 0, triangleCount)
	for i := 0; i < triangleCount; i++ {
		rec := body[i*binaryTriangleSize:]
		// 12 little-endian float32 values: normal, v1, v2, v3. The trailing
		// attribute byte count is ignored.
		var f [12]float64
		for j := range f {
			f[j] = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[j*4:])))
		}
		model.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(f[0], f[1], f[2]),
			geometry.NewVector3(f[3], f[4], f[5]),
			geometry.NewVector3(f[6], f[7], f[8]),
			geometry.NewVector3(f[9], f[10], f[11]),
		))
	}

	return model, nil
}
