package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	body := `{"title":"demo","width":320,"height":240,"output_dir":"frames","supersample":4}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "demo" || cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.OutputDir != "frames" || cfg.Supersample != 4 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{Title: "file", Width: 320, Height: 240}
	cfg.Resolve(Flags{Title: "flag", Width: 640})

	if cfg.Title != "flag" {
		t.Errorf("Title = %q, want flag override", cfg.Title)
	}
	if cfg.Width != 640 {
		t.Errorf("Width = %d, want 640", cfg.Width)
	}
	if cfg.Height != 240 {
		t.Errorf("Height = %d, want file value 240", cfg.Height)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("default size %d×%d, want 800×600", cfg.Width, cfg.Height)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample = %d, want 2", cfg.Supersample)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}
