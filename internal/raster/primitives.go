package raster

import "math"

// Line draws a Bresenham line from (x1,y1) to (x2,y2), endpoints inclusive.
func (fb *FrameBuffer) Line(x1, y1, x2, y2 int, c Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	for {
		fb.SetPixel(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
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

// ThickLine draws thickness parallel copies of the line, offset perpendicular
// to its direction. Zero-length lines have no perpendicular and are skipped.
func (fb *FrameBuffer) ThickLine(x1, y1, x2, y2, thickness int, c Color) {
	for t := -thickness / 2; t <= thickness/2; t++ {
		dx := y2 - y1
		dy := x2 - x1
		length := math.Sqrt(float64(dx*dx + dy*dy))
		if length == 0 {
			continue
		}
		ox := int(float64(t*dx) / length)
		oy := int(float64(-t*dy) / length)
		fb.Line(x1+ox, y1+oy, x2+ox, y2+oy, c)
	}
}

// Rect draws the axis-aligned outline of a w×h rectangle at (x, y).
func (fb *FrameBuffer) Rect(x, y, w, h int, c Color) {
	for i := 0; i < w; i++ {
		fb.SetPixel(x+i, y, c)
		fb.SetPixel(x+i, y+h-1, c)
	}
	for i := 0; i < h; i++ {
		fb.SetPixel(x, y+i, c)
		fb.SetPixel(x+w-1, y+i, c)
	}
}

// FillRect fills every pixel of the rectangle.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c Color) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			fb.SetPixel(x+i, y+j, c)
		}
	}
}

// GradientRect fills the rectangle with a linear blend from c1 to c2,
// top-to-bottom when vertical or left-to-right otherwise.
func (fb *FrameBuffer) GradientRect(x, y, w, h int, c1, c2 Color, vertical bool) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			var t float64
			if vertical {
				t = float64(j) / float64(h)
			} else {
				t = float64(i) / float64(w)
			}
			fb.SetPixel(x+i, y+j, Color{
				R: uint8(float64(c1.R) + (float64(c2.R)-float64(c1.R))*t),
				G: uint8(float64(c1.G) + (float64(c2.G)-float64(c1.G))*t),
				B: uint8(float64(c1.B) + (float64(c2.B)-float64(c1.B))*t),
				A: 255,
			})
		}
	}
}

// Circle draws a midpoint-algorithm circle outline using 8-way symmetry.
func (fb *FrameBuffer) Circle(cx, cy, radius int, c Color) {
	x, y, err := radius, 0, 0
	for x >= y {
		fb.SetPixel(cx+x, cy+y, c)
		fb.SetPixel(cx+y, cy+x, c)
		fb.SetPixel(cx-y, cy+x, c)
		fb.SetPixel(cx-x, cy+y, c)
		fb.SetPixel(cx-x, cy-y, c)
		fb.SetPixel(cx-y, cy-x, c)
		fb.SetPixel(cx+y, cy-x, c)
		fb.SetPixel(cx+x, cy-y, c)
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// FillCircle fills every pixel of the bounding square whose center distance
// is within the radius.
func (fb *FrameBuffer) FillCircle(cx, cy, radius int, c Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				fb.SetPixel(cx+x, cy+y, c)
			}
		}
	}
}

// Triangle draws the three edges of a triangle.
func (fb *FrameBuffer) Triangle(x1, y1, x2, y2, x3, y3 int, c Color) {
	fb.Line(x1, y1, x2, y2, c)
	fb.Line(x2, y2, x3, y3, c)
	fb.Line(x3, y3, x1, y1, c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
