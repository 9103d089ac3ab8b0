package scene

import "image/color"

// Side selects which faces of a mesh a material draws
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

func (s Side) String() string {
	switch s {
	case FrontSide:
		return "front"
	case BackSide:
		return "back"
	case DoubleSide:
		return "double"
	}
	return "unknown"
}

// Material is a Blinn-Phong surface description
type Material struct {
	Color     color.RGBA
	Specular  color.RGBA
	Shininess float64
	Side      Side
	Wireframe bool
}

// Hex converts a 0xRRGGBB literal to an opaque color
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// ModelMaterial is the default look of a loaded model
func ModelMaterial() Material {
	return Material{
		Color:     Hex(0x808080),
		Specular:  Hex(0xffffff),
		Shininess: 30,
		Side:      FrontSide,
	}
}

// FloorMaterial is the matte black ground plane
func FloorMaterial() Material {
	return Material{
		Color:     Hex(0x000000),
		Specular:  Hex(0x444444),
		Shininess: 0,
		Side:      FrontSide,
	}
}

// NormalsFrontMaterial colors correctly wound faces blue in the normals-debug view
func NormalsFrontMaterial() Material {
	return Material{
		Color:     Hex(0x0000ff),
		Specular:  Hex(0x111111),
		Shininess: 30,
		Side:      FrontSide,
	}
}

// NormalsBackMaterial colors faces seen from behind red in the normals-debug view
func NormalsBackMaterial() Material {
	return Material{
		Color:     Hex(0xff0000),
		Specular:  Hex(0x111111),
		Shininess: 30,
		Side:      BackSide,
	}
}
