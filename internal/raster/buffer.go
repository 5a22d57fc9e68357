package raster

import "image"

// FrameBuffer is the CPU-side rendering target: a flat slice of packed
// 0xAARRGGBB pixels, row-major with the origin at the top-left. It is owned
// and mutated by a single goroutine; every draw method clips per pixel, so
// out-of-range geometry degrades to a no-op instead of a crash.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32 // len = Width*Height
}

// NewFrameBuffer allocates a zeroed (transparent black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}
}

// Clear overwrites every pixel with c, alpha included. No blending.
func (fb *FrameBuffer) Clear(c Color) {
	px := c.Packed()
	for i := range fb.Pix {
		fb.Pix[i] = px
	}
}

// SetPixel writes one pixel. Coordinates outside the buffer are silently
// discarded. Opaque colors overwrite directly; translucent colors blend over
// the existing pixel and the result is stored opaque.
func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if c.A == 255 {
		fb.Pix[i] = c.Packed()
		return
	}
	fb.Pix[i] = Blend(c, Unpack(fb.Pix[i])).Packed()
}

// At returns the pixel at (x, y), or zero for out-of-range coordinates.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return Unpack(fb.Pix[y*fb.Width+x])
}

// NRGBA copies the buffer into a stdlib image for the encode path.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, px := range fb.Pix {
		j := i * 4
		img.Pix[j] = uint8(px >> 16)
		img.Pix[j+1] = uint8(px >> 8)
		img.Pix[j+2] = uint8(px)
		img.Pix[j+3] = uint8(px >> 24)
	}
	return img
}

// WriteRGBA serializes the buffer as interleaved RGBA bytes into dst, which
// must hold Width*Height*4 bytes. Used by the present path every frame, so it
// avoids allocating.
func (fb *FrameBuffer) WriteRGBA(dst []byte) {
	for i, px := range fb.Pix {
		j := i * 4
		dst[j] = uint8(px >> 16)
		dst[j+1] = uint8(px >> 8)
		dst[j+2] = uint8(px)
		dst[j+3] = uint8(px >> 24)
	}
}
