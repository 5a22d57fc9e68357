package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
)

// Load reads an image file into the packed format. BMP goes through the
// native decoder; TGA, PNG and JPEG are decoded via image.Decode.
func Load(path string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return LoadBMP(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromImage(src), nil
}
