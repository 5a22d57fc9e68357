package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleDimensions(t *testing.T) {
	src := solidNRGBA(64, 48, color.NRGBA{200, 100, 50, 255})
	dst := Downsample(src, 32, 24)
	if b := dst.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("got %d×%d, want 32×24", b.Dx(), b.Dy())
	}
}

func TestDownsamplePreservesSolidColor(t *testing.T) {
	want := color.NRGBA{200, 100, 50, 255}
	dst := Downsample(solidNRGBA(64, 64, want), 16, 16)

	got := dst.NRGBAAt(8, 8)
	for _, d := range []int{
		int(got.R) - int(want.R),
		int(got.G) - int(want.G),
		int(got.B) - int(want.B),
	} {
		if d < -1 || d > 1 {
			t.Fatalf("center pixel %v, want ~%v", got, want)
		}
	}
	if got.A != 255 {
		t.Fatalf("alpha %d, want 255", got.A)
	}
}

func TestDownsampleNoUpscale(t *testing.T) {
	src := solidNRGBA(16, 16, color.NRGBA{1, 2, 3, 255})
	if dst := Downsample(src, 32, 32); dst != src {
		t.Error("image at target size was not returned unchanged")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	want := color.NRGBA{10, 200, 30, 255}
	if err := SavePNG(path, solidNRGBA(4, 4, want)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("got %d×%d, want 4×4", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("pixel (2,2) = %d,%d,%d, want %d,%d,%d",
			r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.webp")
	if err := SaveWebP(path, solidNRGBA(8, 8, color.NRGBA{255, 0, 0, 255})); err != nil {
		t.Fatalf("SaveWebP: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("wrote empty file")
	}
}

func TestSaveWebPBadPath(t *testing.T) {
	src := solidNRGBA(2, 2, color.NRGBA{A: 255})
	if err := SaveWebP(filepath.Join(t.TempDir(), "no", "such", "dir.webp"), src); err == nil {
		t.Error("expected error for missing directory")
	}
}
