package sequence

import (
	"os"
	"path/filepath"
	"testing"

	"softrender/internal/raster"
)

func TestRunWritesFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir: dir,
		Frames:    4,
		Width:     32,
		Height:    24,
		Workers:   2,
	}

	results := Run(cfg, func(fb *raster.FrameBuffer, i, total int) {
		fb.Clear(raster.Black)
		fb.FillRect(i, i, 8, 8, raster.Red)
	})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("frame %d: %v", r.Frame, r.Err)
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			t.Fatalf("frame %d: %v", r.Frame, err)
		}
		if info.Size() == 0 {
			t.Errorf("frame %d: empty file", r.Frame)
		}
	}
	if results[2].Path != filepath.Join(dir, "frame_0002.webp") {
		t.Errorf("unexpected frame path %s", results[2].Path)
	}
}

func TestRunSupersampled(t *testing.T) {
	cfg := Config{
		OutputDir:   t.TempDir(),
		Frames:      1,
		Width:       16,
		Height:      16,
		Supersample: 2,
		Workers:     1,
	}

	var sawW, sawH int
	results := Run(cfg, func(fb *raster.FrameBuffer, i, total int) {
		sawW, sawH = fb.Width, fb.Height
		fb.Clear(raster.White)
	})

	if results[0].Err != nil {
		t.Fatalf("frame 0: %v", results[0].Err)
	}
	if sawW != 32 || sawH != 32 {
		t.Errorf("worker buffer %d×%d, want supersampled 32×32", sawW, sawH)
	}
}

func TestRunBadOutputDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := Run(Config{
		OutputDir: filepath.Join(blocker, "out"),
		Frames:    1,
		Width:     8,
		Height:    8,
	}, func(fb *raster.FrameBuffer, i, total int) {})

	if len(results) != 1 || results[0].Err == nil {
		t.Fatal("expected an error result for unusable output dir")
	}
}
