package raster

import "softrender/internal/texture"

// Blit draws the image with its top-left corner at (x, y). The image is
// read-only and may be shared between calls; each texel passes through
// SetPixel so image alpha blends.
func (fb *FrameBuffer) Blit(img *texture.Image, x, y int) {
	if img == nil {
		return
	}
	for j := 0; j < img.Height; j++ {
		for i := 0; i < img.Width; i++ {
			fb.SetPixel(x+i, y+j, Unpack(img.Pix[j*img.Width+i]))
		}
	}
}

// BlitScaled draws the image scaled by a factor with an extra alpha multiplier
// applied on top of the image's own alpha. Nearest-neighbor sampling.
func (fb *FrameBuffer) BlitScaled(img *texture.Image, x, y int, scale float64, alpha uint8) {
	if img == nil || scale <= 0 {
		return
	}
	scaledW := int(float64(img.Width) * scale)
	scaledH := int(float64(img.Height) * scale)

	for j := 0; j < scaledH; j++ {
		for i := 0; i < scaledW; i++ {
			srcX := int(float64(i) / scale)
			srcY := int(float64(j) / scale)
			if srcX >= img.Width || srcY >= img.Height {
				continue
			}
			c := Unpack(img.Pix[srcY*img.Width+srcX])
			c.A = uint8(float64(c.A) * float64(alpha) / 255)
			fb.SetPixel(x+i, y+j, c)
		}
	}
}

// BlitTinted draws the image with each channel modulated by the tint color.
func (fb *FrameBuffer) BlitTinted(img *texture.Image, x, y int, tint Color) {
	if img == nil {
		return
	}
	for j := 0; j < img.Height; j++ {
		for i := 0; i < img.Width; i++ {
			c := Unpack(img.Pix[j*img.Width+i])
			c.R = uint8(float64(c.R) * float64(tint.R) / 255)
			c.G = uint8(float64(c.G) * float64(tint.G) / 255)
			c.B = uint8(float64(c.B) * float64(tint.B) / 255)
			fb.SetPixel(x+i, y+j, c)
		}
	}
}
