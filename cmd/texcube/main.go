// Textured cube: affine texture mapping with BMP input, colored-face
// fallback when the texture is missing.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"softrender/internal/mathutil"
	"softrender/internal/raster"
	"softrender/internal/texture"
	"softrender/internal/window"
)

var cubeVertices = [8]mathutil.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3}, {4, 6, 5}, {4, 7, 6},
	{0, 4, 5}, {0, 5, 1}, {2, 6, 7}, {2, 7, 3},
	{0, 3, 7}, {0, 7, 4}, {1, 5, 6}, {1, 6, 2},
}

var faceUVs = [12][3][2]float64{
	{{0, 0}, {1, 0}, {1, 1}}, {{0, 0}, {1, 1}, {0, 1}},
	{{0, 0}, {1, 1}, {1, 0}}, {{0, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {1, 0}, {1, 1}}, {{0, 0}, {1, 1}, {0, 1}},
	{{0, 0}, {1, 0}, {1, 1}}, {{0, 0}, {1, 1}, {0, 1}},
	{{0, 0}, {1, 0}, {1, 1}}, {{0, 0}, {1, 1}, {0, 1}},
	{{0, 0}, {1, 0}, {1, 1}}, {{0, 0}, {1, 1}, {0, 1}},
}

var faceColors = [12]raster.Color{
	raster.RGB(255, 100, 100), raster.RGB(255, 100, 100),
	raster.RGB(100, 255, 100), raster.RGB(100, 255, 100),
	raster.RGB(100, 100, 255), raster.RGB(100, 100, 255),
	raster.RGB(255, 255, 100), raster.RGB(255, 255, 100),
	raster.RGB(255, 100, 255), raster.RGB(255, 100, 255),
	raster.RGB(100, 255, 255), raster.RGB(100, 255, 255),
}

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	texPath := flag.String("texture", "assets/test.bmp", "Texture file (BMP, TGA, PNG or JPEG)")
	flag.Parse()

	tex, err := texture.Load(*texPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using colored faces\n", err)
	}

	title := "Textured 3D Cube"
	if tex == nil {
		title = "Colored 3D Cube"
	}

	start := time.Now()
	aspect := float64(*width) / float64(*height)

	err = window.Run(window.Config{
		Title:  title,
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(20, 25, 35))
		fb.Text(title, 10, 10, raster.White, 2)

		model := mathutil.Mat4Identity()
		model = mathutil.Mat4Mul(model, mathutil.RotX(t*0.6))
		model = mathutil.Mat4Mul(model, mathutil.RotY(t*0.8))
		model = mathutil.Mat4Mul(model, mathutil.Translate(0, 0, -4))

		view := mathutil.LookAt(
			mathutil.Vec3{0, 0, 0},
			mathutil.Vec3{0, 0, -1},
			mathutil.Vec3{0, 1, 0},
		)
		proj := mathutil.Perspective(math.Pi/3, aspect, 0.1, 100)
		transform := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, model))

		for i, face := range cubeFaces {
			x1, y1, _ := fb.Project(cubeVertices[face[0]], transform)
			x2, y2, _ := fb.Project(cubeVertices[face[1]], transform)
			x3, y3, _ := fb.Project(cubeVertices[face[2]], transform)

			if tex != nil {
				uv := faceUVs[i]
				fb.TexturedTriangle(
					x1, y1, uv[0][0], uv[0][1],
					x2, y2, uv[1][0], uv[1][1],
					x3, y3, uv[2][0], uv[2][1],
					tex)
			} else {
				fb.FillTriangle(x1, y1, x2, y2, x3, y3, faceColors[i])
			}
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
