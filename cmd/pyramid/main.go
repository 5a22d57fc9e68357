// Solid pyramid with per-face diffuse shading, drawn in painter's order.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"softrender/internal/mathutil"
	"softrender/internal/raster"
	"softrender/internal/window"
)

var pyramidVertices = [5]mathutil.Vec3{
	{0, 1, 0}, // apex
	{-1, -1, 1},
	{1, -1, 1},
	{1, -1, -1},
	{-1, -1, -1},
}

// Four sides plus the split base quad, listed back to front by convention.
var pyramidFaces = [6][3]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
	{1, 4, 3}, {1, 3, 2},
}

var faceColors = [6]raster.Color{
	raster.RGB(255, 100, 100), raster.RGB(100, 255, 100),
	raster.RGB(100, 100, 255), raster.RGB(255, 255, 100),
	raster.RGB(255, 100, 255), raster.RGB(100, 255, 255),
}

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	flag.Parse()

	start := time.Now()
	aspect := float64(*width) / float64(*height)
	lightDir := mathutil.Vec3{0.5, 0.8, 0.6}.Normalize()

	err := window.Run(window.Config{
		Title:  "3D Colored Pyramid",
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(8, 10, 15))
		fb.Text("3D Pyramid with Lighting", 10, 10, raster.White, 2)
		fb.Text("Surfaces facing the light are brighter", 10, 30, raster.RGB(150, 150, 150), 1)

		model := mathutil.Mat4Identity()
		model = mathutil.Mat4Mul(model, mathutil.RotY(t*0.7))
		model = mathutil.Mat4Mul(model, mathutil.RotX(math.Sin(t*0.5)*0.4))
		model = mathutil.Mat4Mul(model, mathutil.Translate(0, 0, -3.5))

		view := mathutil.LookAt(
			mathutil.Vec3{0, 0, 0},
			mathutil.Vec3{0, 0, -1},
			mathutil.Vec3{0, 1, 0},
		)
		proj := mathutil.Perspective(math.Pi/3, aspect, 0.1, 100)
		transform := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, model))

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

			edge := raster.RGB(20, 20, 20)
			fb.Line3D(v1, v2, transform, edge)
			fb.Line3D(v2, v3, transform, edge)
			fb.Line3D(v3, v1, transform, edge)
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
