// Package config loads shared settings for the cmd tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds window and output settings. Fields not set in the file keep
// their zero values until Resolve applies defaults.
type Config struct {
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	OutputDir   string `json:"output_dir"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Title       string
	Width       int
	Height      int
	OutputDir   string
	Supersample int
	Workers     int
}

// Load reads a JSON config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides, then fills remaining empty fields with
// defaults.
func (c *Config) Resolve(f Flags) {
	if f.Title != "" {
		c.Title = f.Title
	}
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.Supersample > 0 {
		c.Supersample = f.Supersample
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
