// Renders a cube turntable as numbered WebP frames using the parallel
// sequence runner.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"softrender/internal/config"
	"softrender/internal/mathutil"
	"softrender/internal/raster"
	"softrender/internal/sequence"
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
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 120, "Number of frames (one full turn)")
	width := flag.Int("width", 0, "Frame width (default: 800)")
	height := flag.Int("height", 0, "Frame height (default: 600)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	workers := flag.Int("workers", 0, "Worker goroutines (default: NumCPU)")
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
		OutputDir:   *outputDir,
		Supersample: *supersample,
		Workers:     *workers,
	})

	fmt.Printf("Cube turntable: %d frames, %dx%d, %d workers\n",
		*frames, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)

	start := time.Now()

	results := sequence.Run(sequence.Config{
		OutputDir:   cfg.OutputDir,
		Frames:      *frames,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, drawFrame)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %v\n", r.Frame, r.Err)
		}
	}

	fmt.Printf("Done: %d ok, %d failed in %.1fs\n",
		len(results)-failed, failed, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

func drawFrame(fb *raster.FrameBuffer, i, total int) {
	angle := 2 * math.Pi * float64(i) / float64(total)

	fb.Clear(raster.RGB(15, 20, 30))

	model := mathutil.Mat4Identity()
	model = mathutil.Mat4Mul(model, mathutil.RotX(0.4))
	model = mathutil.Mat4Mul(model, mathutil.RotY(angle))
	model = mathutil.Mat4Mul(model, mathutil.Translate(0, 0, -5))

	view := mathutil.LookAt(
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 0, -1},
		mathutil.Vec3{0, 1, 0},
	)
	proj := mathutil.Perspective(math.Pi/3, float64(fb.Width)/float64(fb.Height), 0.1, 100)
	transform := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, model))

	for _, e := range cubeEdges {
		fb.Line3D(cubeVertices[e[0]], cubeVertices[e[1]], transform, raster.RGB(100, 200, 255))
	}
	for _, v := range cubeVertices {
		x, y, _ := fb.Project(v, transform)
		fb.FillCircle(x, y, 4, raster.RGB(255, 200, 100))
	}
}
