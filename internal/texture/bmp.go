package texture

import (
	"encoding/binary"
	"fmt"
	"os"
)

// bmpHeaderSize is the combined BITMAPFILEHEADER + BITMAPINFOHEADER size.
const bmpHeaderSize = 54

// DecodeBMP parses an uncompressed Windows BMP. Only 24 bpp (BGR) and 32 bpp
// (BGRA) data are supported; indexed and compressed variants are rejected.
// Rows are stored padded to a 4-byte boundary and bottom-up when the header
// height is positive; the returned Image is always dense and top-down, with
// alpha forced to 255 for 24-bit sources.
func DecodeBMP(data []byte) (*Image, error) {
	if len(data) < bmpHeaderSize {
		return nil, fmt.Errorf("bmp: truncated header (%d bytes)", len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("bmp: bad magic %q", data[:2])
	}

	dataOff := int(binary.LittleEndian.Uint32(data[10:]))
	width := int(int32(binary.LittleEndian.Uint32(data[18:])))
	rawHeight := int(int32(binary.LittleEndian.Uint32(data[22:])))
	bpp := int(binary.LittleEndian.Uint16(data[28:]))
	compression := binary.LittleEndian.Uint32(data[30:])

	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("bmp: unsupported bit depth %d", bpp)
	}
	if compression != 0 {
		return nil, fmt.Errorf("bmp: compressed data not supported (method %d)", compression)
	}
	if dataOff < bmpHeaderSize {
		dataOff = bmpHeaderSize
	}

	height := rawHeight
	bottomUp := rawHeight > 0
	if height < 0 {
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("bmp: bad dimensions %d×%d", width, rawHeight)
	}

	bytesPerPx := bpp / 8
	rowSize := ((bpp*width + 31) / 32) * 4
	if dataOff+rowSize*height > len(data) {
		return nil, fmt.Errorf("bmp: truncated pixel data")
	}

	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		row := data[dataOff+y*rowSize:]
		dstY := y
		if bottomUp {
			dstY = height - 1 - y
		}
		for x := 0; x < width; x++ {
			b := row[x*bytesPerPx]
			g := row[x*bytesPerPx+1]
			r := row[x*bytesPerPx+2]
			a := uint8(255)
			if bytesPerPx == 4 {
				a = row[x*4+3]
			}
			img.Pix[dstY*width+x] = uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		}
	}
	return img, nil
}

// LoadBMP reads and decodes a BMP file.
func LoadBMP(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bmp: read %s: %w", path, err)
	}
	img, err := DecodeBMP(data)
	if err != nil {
		return nil, fmt.Errorf("bmp: decode %s: %w", path, err)
	}
	return img, nil
}
