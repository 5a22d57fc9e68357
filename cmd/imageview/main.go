// Image rendering demo: plain blit, scaled, fading and tinted variants.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"softrender/internal/raster"
	"softrender/internal/texture"
	"softrender/internal/window"
)

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	imgPath := flag.String("image", "assets/test.bmp", "Image to display")
	flag.Parse()

	img, err := texture.Load(*imgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Create a 64x64 BMP at assets/test.bmp to see image effects")
	}

	start := time.Now()

	err = window.Run(window.Config{
		Title:  "Image Rendering",
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(20, 25, 35))
		fb.Text("Image Rendering Demo", 10, 10, raster.White, 2)

		if img == nil {
			fb.Text("No image loaded!", 300, 250, raster.RGB(255, 100, 100), 2)
			fb.Text("Create assets/test.bmp (64x64 recommended)", 200, 290, raster.RGB(200, 200, 200), 1)
			return nil
		}

		label := raster.RGB(200, 200, 200)

		fb.Blit(img, 50, 80)
		fb.Text("Normal", 50, 60, label, 1)

		scale := 1 + 0.5*math.Sin(t)
		fb.BlitScaled(img, 200, 80, scale, 255)
		fb.Text("Scaled", 200, 60, label, 1)

		alpha := uint8(128 + 127*math.Sin(t*2))
		fb.BlitScaled(img, 370, 80, 1.5, alpha)
		fb.Text("Fading", 370, 60, label, 1)

		tint := raster.RGB(
			uint8(128+127*math.Sin(t)),
			uint8(128+127*math.Cos(t*1.5)),
			uint8(128+127*math.Sin(t*2)),
		)
		fb.BlitTinted(img, 550, 80, tint)
		fb.Text("Tinted", 550, 60, label, 1)

		for i := 0; i < 5; i++ {
			s := 0.5 + float64(i)*0.3
			a := uint8(255 - i*40)
			fb.BlitScaled(img, 50+i*70, 250, s, a)
		}
		fb.Text("Size & Alpha Variation", 50, 230, label, 1)

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
