// Package sequence renders animation frames offscreen in parallel. The core
// rasterizer stays single-threaded; parallelism is per frame, each worker
// owning its own framebuffer.
package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"softrender/internal/export"
	"softrender/internal/raster"
)

// Config holds shared settings for one sequence run.
type Config struct {
	OutputDir   string
	Frames      int
	Width       int
	Height      int
	Supersample int // render at N× and downsample, 1 = off
	Workers     int
}

// FrameFunc draws frame i of total into fb. It must fully cover the buffer
// (starting with Clear); the buffer is reused across frames within a worker.
type FrameFunc func(fb *raster.FrameBuffer, i, total int)

// Result holds the outcome of one frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

// Run renders cfg.Frames frames through draw and encodes each to WebP under
// cfg.OutputDir. A progress line is printed every 2 seconds.
func Run(cfg Config, draw FrameFunc) []Result {
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return []Result{{Err: fmt.Errorf("sequence: output dir: %w", err)}}
	}

	results := make([]Result, cfg.Frames)
	var processed atomic.Int64
	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, cfg.Frames, float64(p)/elapsed)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fb := raster.NewFrameBuffer(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
			for i := range frameChan {
				results[i] = renderFrame(cfg, fb, i, draw)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < cfg.Frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, fb *raster.FrameBuffer, i int, draw FrameFunc) Result {
	draw(fb, i, cfg.Frames)

	img := fb.NRGBA()
	if cfg.Supersample > 1 {
		img = export.Downsample(img, cfg.Width, cfg.Height)
	}

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.webp", i))
	if err := export.SaveWebP(path, img); err != nil {
		return Result{Frame: i, Path: path, Err: err}
	}
	return Result{Frame: i, Path: path}
}
