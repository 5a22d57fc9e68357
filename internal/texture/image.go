package texture

import (
	"image"
	"image/color"
)

// Image is a decoded pixel grid packed as 0xAARRGGBB, row-major, top-left
// origin — the same layout the framebuffer uses. Images are loaded once and
// read-only afterwards, so multiple draw calls may share one Image.
type Image struct {
	Width  int
	Height int
	Pix    []uint32 // len = Width*Height
}

// NewImage allocates a zeroed w×h image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// FromImage converts any stdlib image into the packed layout.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < img.Height; y++ {
			off := y * n.Stride
			for x := 0; x < img.Width; x++ {
				i := off + x*4
				img.Pix[y*img.Width+x] = uint32(n.Pix[i+3])<<24 |
					uint32(n.Pix[i])<<16 | uint32(n.Pix[i+1])<<8 | uint32(n.Pix[i+2])
			}
		}
		return img
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			img.Pix[y*img.Width+x] = uint32(c.A)<<24 |
				uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return img
}

// NRGBA copies the image back into a stdlib NRGBA, for encoding or
// inspection.
func (img *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, px := range img.Pix {
		j := i * 4
		dst.Pix[j] = uint8(px >> 16)
		dst.Pix[j+1] = uint8(px >> 8)
		dst.Pix[j+2] = uint8(px)
		dst.Pix[j+3] = uint8(px >> 24)
	}
	return dst
}
