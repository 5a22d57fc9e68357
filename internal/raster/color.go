package raster

// Color is an 8-bit-per-channel RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

var (
	White   = RGB(255, 255, 255)
	Black   = RGB(0, 0, 0)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Magenta = RGB(255, 0, 255)
	Cyan    = RGB(0, 255, 255)
	Gray    = RGB(128, 128, 128)
)

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Blend composites src over dst using src's alpha. The destination's own
// alpha is ignored and the result is written fully opaque; the backbuffer is
// always presented as an opaque surface.
func Blend(src, dst Color) Color {
	a := float64(src.A) / 255
	return Color{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a)),
		A: 255,
	}
}

// Packed returns the 0xAARRGGBB framebuffer encoding of c.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 0xAARRGGBB pixel back into a Color.
func Unpack(px uint32) Color {
	return Color{
		R: uint8(px >> 16),
		G: uint8(px >> 8),
		B: uint8(px),
		A: uint8(px >> 24),
	}
}
