// 2D primitives tour: rects, circles, lines, triangles, alpha, text.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"softrender/internal/raster"
	"softrender/internal/window"
)

func main() {
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	flag.Parse()

	start := time.Now()

	err := window.Run(window.Config{
		Title:  "Basic Shapes",
		Width:  *width,
		Height: *height,
	}, func(w *window.Window) error {
		fb := w.Frame()
		t := time.Since(start).Seconds()

		fb.Clear(raster.RGB(30, 30, 40))

		fb.FillRect(50, 50, 100, 80, raster.RGB(255, 100, 100))
		fb.Rect(55, 55, 90, 70, raster.White)

		fb.FillCircle(250, 90, 40, raster.RGB(100, 255, 100))
		fb.Circle(250, 90, 45, raster.White)

		fb.Line(350, 50, 450, 130, raster.RGB(100, 100, 255))
		fb.ThickLine(350, 140, 450, 220, 3, raster.RGB(255, 255, 100))

		fb.FillTriangle(550, 50, 650, 50, 600, 130, raster.RGB(255, 150, 200))
		fb.Triangle(545, 45, 655, 45, 600, 135, raster.White)

		fb.GradientRect(50, 420, 200, 120, raster.RGB(80, 30, 120), raster.RGB(255, 180, 40), true)

		// Pulsing translucent circle
		pulse := int(20 + 10*math.Sin(t*3))
		fb.FillCircle(100, 300, 30+pulse, raster.RGBA(255, 200, 100, 180))

		// Orbiting circles
		for i := 0; i < 8; i++ {
			angle := t + float64(i)*math.Pi/4
			x := 400 + int(math.Cos(angle)*100)
			y := 350 + int(math.Sin(angle)*100)
			fb.FillCircle(x, y, 15, raster.RGB(150, 100, 255))
		}

		fb.Text("Basic 2D Shapes", 10, 10, raster.White, 2)
		fb.Text("This is the render loop - clear, draw, present, repeat", 10, 30, raster.RGB(200, 200, 200), 1)

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
