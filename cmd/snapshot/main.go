// Renders one offscreen frame of the shaded-pyramid scene and writes it to
// WebP or PNG. Useful for checking rasterizer output without a display.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"softrender/internal/config"
	"softrender/internal/export"
	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	out := flag.String("out", "snapshot.webp", "Output file (.webp or .png)")
	width := flag.Int("width", 0, "Render width (default: 800)")
	height := flag.Int("height", 0, "Render height (default: 600)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	angle := flag.Float64("angle", 35, "Model rotation in degrees")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
	})

	fb := raster.NewFrameBuffer(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
	drawScene(fb, mathutil.Deg2Rad(*angle), cfg.Supersample)

	img := fb.NRGBA()
	if cfg.Supersample > 1 {
		img = export.Downsample(img, cfg.Width, cfg.Height)
	}

	var err error
	switch strings.ToLower(filepath.Ext(*out)) {
	case ".png":
		err = export.SavePNG(*out, img)
	default:
		err = export.SaveWebP(*out, img)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *out, cfg.Width, cfg.Height)
}

var pyramidVertices = [5]mathutil.Vec3{
	{0, 1, 0},
	{-1, -1, 1}, {1, -1, 1}, {1, -1, -1}, {-1, -1, -1},
}

var pyramidFaces = [6][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
	{1, 4, 3}, {1, 3, 2},
}

var faceColors = [6]raster.Color{
	raster.RGB(255, 100, 100), raster.RGB(100, 255, 100),
	raster.RGB(100, 100, 255), raster.RGB(255, 255, 100),
	raster.RGB(255, 100, 255), raster.RGB(100, 255, 255),
}

func drawScene(fb *raster.FrameBuffer, angle float64, scale int) {
	fb.GradientRect(0, 0, fb.Width, fb.Height, raster.RGB(8, 10, 15), raster.RGB(30, 35, 55), true)

	model := mathutil.Mat4Identity()
	model = mathutil.Mat4Mul(model, mathutil.RotY(angle))
	model = mathutil.Mat4Mul(model, mathutil.RotX(0.3))
	model = mathutil.Mat4Mul(model, mathutil.Translate(0, 0, -3.5))

	view := mathutil.LookAt(
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 0, -1},
		mathutil.Vec3{0, 1, 0},
	)
	proj := mathutil.Perspective(math.Pi/3, float64(fb.Width)/float64(fb.Height), 0.1, 100)
	transform := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, model))

	lightDir := mathutil.Vec3{0.5, 0.8, 0.6}.Normalize()

	for i, face := range pyramidFaces {
		v1 := pyramidVertices[face[0]]
		v2 := pyramidVertices[face[1]]
		v3 := pyramidVertices[face[2]]

		normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
		diffuse := normal.Dot(lightDir)
		if diffuse < 0 {
			diffuse = 0
		}
		brightness := 0.3 + diffuse*0.7

		col := faceColors[i]
		col.R = uint8(float64(col.R) * brightness)
		col.G = uint8(float64(col.G) * brightness)
		col.B = uint8(float64(col.B) * brightness)

		fb.Triangle3D(v1, v2, v3, transform, col)
	}

	fb.Text("softrender snapshot", 10*scale, 10*scale, raster.White, 2*scale)
}
