// Package window hosts the framebuffer in a desktop window. Ebiten provides
// the platform contract — create a window, blit a pixel buffer each frame,
// poll keyboard and close events, pace the loop — while all drawing stays in
// the CPU-side raster package.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"softrender/internal/raster"
)

// Config describes the window to open. Zero fields take defaults.
type Config struct {
	Title  string
	Width  int // framebuffer width, default 800
	Height int // framebuffer height, default 600
	Scale  int // window pixels per framebuffer pixel, default 1
	TPS    int // update ticks per second, default 60
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// FrameFunc draws one frame into the window's framebuffer.
type FrameFunc func(w *Window) error

// Window owns the back buffer and the running flag for one render loop.
// The event callback reaches renderer state through this struct rather than
// a package-level global, so multiple windows would not alias.
type Window struct {
	fb      *raster.FrameBuffer
	frame   FrameFunc
	running bool

	rgba []byte
	img  *ebiten.Image
}

// Run opens a window and drives the frame loop until the window is closed,
// Escape is pressed, Close is called, or the frame callback returns an error.
func Run(cfg Config, frame FrameFunc) error {
	cfg = cfg.withDefaults()

	w := &Window{
		fb:      raster.NewFrameBuffer(cfg.Width, cfg.Height),
		frame:   frame,
		running: true,
		rgba:    make([]byte, cfg.Width*cfg.Height*4),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Frame returns the back buffer to draw into.
func (w *Window) Frame() *raster.FrameBuffer { return w.fb }

// Running reports whether the loop is still active.
func (w *Window) Running() bool { return w.running }

// Close stops the loop after the current frame.
func (w *Window) Close() { w.running = false }

// Update runs one tick: poll input, then hand the buffer to the frame
// callback. Implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		w.running = false
	}
	if !w.running {
		return ebiten.Termination
	}
	if w.frame != nil {
		if err := w.frame(w); err != nil {
			return err
		}
	}
	return nil
}

// Draw presents the packed ARGB buffer: serialize to RGBA bytes, upload, and
// blit. Implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(w.fb.Width, w.fb.Height)
	}
	w.fb.WriteRGBA(w.rgba)
	w.img.WritePixels(w.rgba)
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at framebuffer resolution regardless of
// window size. Implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.fb.Width, w.fb.Height
}
