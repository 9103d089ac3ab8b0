package viewer

import (
	"image"
	"image/color"
	"math"
)

// lineDepthBias lets lines win the depth test against the surface they lie on
const lineDepthBias = 2e-3

// frame is a color buffer with a depth buffer. Depth is stored as inverse
// view distance so it interpolates linearly in screen space; 0 means empty.
type frame struct {
	img   *image.RGBA
	depth []float64
}

func newFrame(width, height int, background color.RGBA) *frame {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = 0xff
	}
	return &frame{img: img, depth: make([]float64, width*height)}
}

// vertex is a projected point: pixel coordinates and inverse depth
type vertex struct {
	x, y, w float64
}

// plot writes col at (x, y) if w is nearer than what is already there
func (f *frame) plot(x, y int, w float64, col color.RGBA) {
	b := f.img.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return
	}
	idx := y*b.Max.X + x
	if w > f.depth[idx] {
		f.depth[idx] = w
		f.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with depth testing
func (f *frame) fillTriangle(a, b, c vertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	bounds := f.img.Bounds()

	// Scanline algorithm with depth interpolation
	for y := int(math.Max(0, math.Ceil(a.y))); y <= int(math.Min(float64(bounds.Max.Y-1), c.y)); y++ {
		fy := float64(y)

		var xStart, xEnd, wStart, wEnd float64
		found := 0
		edge := func(p, q vertex) {
			if p.y == q.y || fy < p.y || fy > q.y || found == 2 {
				return
			}
			t := (fy - p.y) / (q.y - p.y)
			x := p.x + t*(q.x-p.x)
			w := p.w + t*(q.w-p.w)
			if found == 0 {
				xStart, wStart = x, w
			} else {
				xEnd, wEnd = x, w
			}
			found++
		}

		// Find intersections with triangle edges
		edge(a, b)
		edge(b, c)
		edge(a, c)

		if found < 2 {
			continue
		}

		// Ensure xStart < xEnd
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			wStart, wEnd = wEnd, wStart
		}

		// Clamp to image bounds
		x0 := int(math.Max(0, math.Ceil(xStart)))
		x1 := int(math.Min(float64(bounds.Max.X-1), xEnd))

		for x := x0; x <= x1; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			f.plot(x, y, wStart+t*(wEnd-wStart), col)
		}
	}
}

// clipLine trims the segment to the pixel rectangle with Liang-Barsky.
// Inverse depth is linear in screen space, so it is interpolated the same way.
func clipLine(a, b vertex, width, height int) (vertex, vertex, bool) {
	dx, dy := b.x-a.x, b.y-a.y
	t0, t1 := 0.0, 1.0
	maxX, maxY := float64(width)-0.5, float64(height)-0.5
	for _, e := range [4][2]float64{
		{-dx, a.x + 0.5},
		{dx, maxX - a.x},
		{-dy, a.y + 0.5},
		{dy, maxY - a.y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	at := func(t float64) vertex {
		return vertex{x: a.x + t*dx, y: a.y + t*dy, w: a.w + t*(b.w-a.w)}
	}
	return at(t0), at(t1), true
}

// drawLine draws a depth tested line using Bresenham's algorithm
func (f *frame) drawLine(a, b vertex, col color.RGBA) {
	bounds := f.img.Bounds()
	a, b, ok := clipLine(a, b, bounds.Max.X, bounds.Max.Y)
	if !ok {
		return
	}

	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		w := a.w + t*(b.w-a.w)
		f.plot(x1, y1, w*(1+lineDepthBias), col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
