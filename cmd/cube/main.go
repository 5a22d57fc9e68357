// Rotating wireframe cube: model/view/projection composition and point
// projection.
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

var cubeVertices = [8]mathutil.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	flag.Parse()

	start := time.Now()
	aspect := float64(*width) / float64(*height)

	err := window.Run(window.Config{
		Title:  "3D Wireframe Cube",
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(15, 20, 30))
		fb.Text("3D Wireframe Cube", 10, 10, raster.White, 2)
		fb.Text("Matrices transform 3D points to screen", 10, 30, raster.RGB(200, 200, 200), 1)

		model := mathutil.Mat4Identity()
		model = mathutil.Mat4Mul(model, mathutil.RotX(t*0.7))
		model = mathutil.Mat4Mul(model, mathutil.RotY(t))
		model = mathutil.Mat4Mul(model, mathutil.RotZ(t*0.5))
		model = mathutil.Mat4Mul(model, mathutil.Translate(0, 0, -5))

		view := mathutil.LookAt(
			mathutil.Vec3{0, 0, 0},
			mathutil.Vec3{0, 0, -1},
			mathutil.Vec3{0, 1, 0},
		)
		proj := mathutil.Perspective(math.Pi/3, aspect, 0.1, 100)
		transform := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, model))

		// Nearer edges render brighter; depth comes back from projection.
		for _, e := range cubeEdges {
			_, _, d1 := fb.Project(cubeVertices[e[0]], transform)
			_, _, d2 := fb.Project(cubeVertices[e[1]], transform)
			shade := 1 - (d1+d2)/2*0.4
			if shade < 0.3 {
				shade = 0.3
			}
			fb.Line3D(cubeVertices[e[0]], cubeVertices[e[1]], transform,
				raster.RGB(uint8(100*shade), uint8(200*shade), uint8(255*shade)))
		}

		for _, v := range cubeVertices {
			x, y, d := fb.Project(v, transform)
			r := 6 - int(d*3)
			if r < 2 {
				r = 2
			}
			fb.FillCircle(x, y, r, raster.RGB(255, 200, 100))
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
