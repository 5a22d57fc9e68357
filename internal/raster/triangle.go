package raster

import "softrender/internal/texture"

// FillTriangle rasterizes a solid triangle with a scanline fill: vertices are
// sorted by y, the triangle splits into an upper and lower half at the middle
// vertex, and each scanline fills the interpolated inclusive x-range.
// Degenerate triangles (zero total height) draw nothing.
func (fb *FrameBuffer) FillTriangle(x1, y1, x2, y2, x3, y3 int, c Color) {
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y1 > y3 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	totalHeight := y3 - y1
	if totalHeight == 0 {
		return
	}

	for y := y1; y <= y3; y++ {
		secondHalf := y > y2 || y2 == y1
		segmentHeight := y2 - y1
		if secondHalf {
			segmentHeight = y3 - y2
		}
		if segmentHeight == 0 {
			continue
		}

		alpha := float64(y-y1) / float64(totalHeight)
		var beta float64
		if secondHalf {
			beta = float64(y-y2) / float64(segmentHeight)
		} else {
			beta = float64(y-y1) / float64(segmentHeight)
		}

		xa := x1 + int(float64(x3-x1)*alpha)
		var xb int
		if secondHalf {
			xb = x2 + int(float64(x3-x2)*beta)
		} else {
			xb = x1 + int(float64(x2-x1)*beta)
		}

		if xa > xb {
			xa, xb = xb, xa
		}
		for x := xa; x <= xb; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

// TexturedTriangle fills a triangle with an affine-mapped texture. UVs are
// interpolated linearly alongside the scanline x-bounds (no perspective
// correction); coordinates outside [0,1] wrap. Sampled texels keep their own
// alpha and go through SetPixel, so texture transparency blends normally.
func (fb *FrameBuffer) TexturedTriangle(
	x1, y1 int, u1, v1 float64,
	x2, y2 int, u2, v2 float64,
	x3, y3 int, u3, v3 float64,
	tex *texture.Image,
) {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		return
	}

	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
		u1, v1, u2, v2 = u2, v2, u1, v1
	}
	if y1 > y3 {
		x1, y1, x3, y3 = x3, y3, x1, y1
		u1, v1, u3, v3 = u3, v3, u1, v1
	}
	if y2 > y3 {
		x2, y2, x3, y3 = x3, y3, x2, y2
		u2, v2, u3, v3 = u3, v3, u2, v2
	}

	totalHeight := y3 - y1
	if totalHeight == 0 {
		return
	}

	for y := y1; y <= y3; y++ {
		secondHalf := y > y2 || y2 == y1
		segmentHeight := y2 - y1
		if secondHalf {
			segmentHeight = y3 - y2
		}
		if segmentHeight == 0 {
			continue
		}

		alpha := float64(y-y1) / float64(totalHeight)
		var beta float64
		if secondHalf {
			beta = float64(y-y2) / float64(segmentHeight)
		} else {
			beta = float64(y-y1) / float64(segmentHeight)
		}

		xa := x1 + int(float64(x3-x1)*alpha)
		ua := u1 + (u3-u1)*alpha
		va := v1 + (v3-v1)*alpha

		var xb int
		var ub, vb float64
		if secondHalf {
			xb = x2 + int(float64(x3-x2)*beta)
			ub = u2 + (u3-u2)*beta
			vb = v2 + (v3-v2)*beta
		} else {
			xb = x1 + int(float64(x2-x1)*beta)
			ub = u1 + (u2-u1)*beta
			vb = v1 + (v2-v1)*beta
		}

		if xa > xb {
			xa, xb = xb, xa
			ua, ub = ub, ua
			va, vb = vb, va
		}

		for x := xa; x <= xb; x++ {
			t := 0.0
			if xb > xa {
				t = float64(x-xa) / float64(xb-xa)
			}
			u := ua + (ub-ua)*t
			v := va + (vb-va)*t

			texX := int(u*float64(tex.Width)) % tex.Width
			texY := int(v*float64(tex.Height)) % tex.Height
			if texX < 0 {
				texX += tex.Width
			}
			if texY < 0 {
				texY += tex.Height
			}

			fb.SetPixel(x, y, Unpack(tex.Pix[texY*tex.Width+texX]))
		}
	}
}
