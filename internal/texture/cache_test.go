package texture

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.bmp")
	data := makeBMP24(2, 2, []uint32{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFFFF})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCache()
	img := c.Resolve(path)
	if img == nil {
		t.Fatal("Resolve returned nil for a valid file")
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %d×%d, want 2×2", img.Width, img.Height)
	}

	// Second lookup must hit the cache, even once the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if again := c.Resolve(path); again != img {
		t.Error("second Resolve did not return the cached image")
	}
}

func TestCacheMemoizesFailure(t *testing.T) {
	c := NewCache()
	missing := filepath.Join(t.TempDir(), "missing.bmp")
	if c.Resolve(missing) != nil {
		t.Fatal("Resolve of missing file returned non-nil")
	}
	if c.Resolve(missing) != nil {
		t.Fatal("memoized failure returned non-nil")
	}
}
