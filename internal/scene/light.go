package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/stlview/pkg/geometry"
)

// lightScale maps light intensities to the 0..1 range used for shading
const lightScale = 0.2

// HemisphereLight blends between a sky and a ground color by surface orientation
type HemisphereLight struct {
	Sky       color.RGBA
	Ground    color.RGBA
	Intensity float64
}

// DirectionalLight shines from Position towards the origin
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float64
	Position  geometry.Vector3
}

// Lights holds the two lights of the scene
type Lights struct {
	Hemisphere  HemisphereLight
	Directional DirectionalLight
}

// DefaultLights returns the fixed scene lighting
func DefaultLights() Lights {
	return Lights{
		Hemisphere: HemisphereLight{
			Sky:       Hex(0x808080),
			Ground:    Hex(0xffffff),
			Intensity: 5,
		},
		Directional: DirectionalLight{
			Color:     Hex(0xffffff),
			Intensity: 5,
			Position:  geometry.NewVector3(40, 20, 40),
		},
	}
}

type rgb struct{ r, g, b float64 }

func toRGB(c color.RGBA) rgb {
	return rgb{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func (c rgb) mul(o rgb) rgb       { return rgb{c.r * o.r, c.g * o.g, c.b * o.b} }
func (c rgb) add(o rgb) rgb       { return rgb{c.r + o.r, c.g + o.g, c.b + o.b} }
func (c rgb) scale(f float64) rgb { return rgb{c.r * f, c.g * f, c.b * f} }

func (c rgb) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{R: clamp(c.r), G: clamp(c.g), B: clamp(c.b), A: 0xff}
}

// Shade returns the lit color of a surface with the given unit normal, seen
// along viewDir (unit vector from the surface towards the eye).
func Shade(m Material, l Lights, normal, viewDir geometry.Vector3) color.RGBA {
	base := toRGB(m.Color)

	t := 0.5*normal.Y + 0.5
	hemi := rgb{
		r: lerp(float64(l.Hemisphere.Ground.R), float64(l.Hemisphere.Sky.R), t) / 255,
		g: lerp(float64(l.Hemisphere.Ground.G), float64(l.Hemisphere.Sky.G), t) / 255,
		b: lerp(float64(l.Hemisphere.Ground.B), float64(l.Hemisphere.Sky.B), t) / 255,
	}.scale(l.Hemisphere.Intensity * lightScale)

	lightDir := l.Directional.Position.Normalize()
	radiance := toRGB(l.Directional.Color).scale(l.Directional.Intensity * lightScale)
	ndl := math.Max(0, normal.Dot(lightDir))

	out := base.mul(hemi.add(radiance.scale(ndl)))

	if ndl > 0 {
		half := lightDir.Add(viewDir).Normalize()
		spec := math.Pow(math.Max(0, normal.Dot(half)), m.Shininess)
		out = out.add(toRGB(m.Specular).mul(radiance).scale(spec * ndl))
	}

	return out.toRGBA()
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
