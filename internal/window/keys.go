package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key identifies the small set of keys the demos poll.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
)

func (k Key) ebiten() ebiten.Key {
	switch k {
	case KeyLeft:
		return ebiten.KeyArrowLeft
	case KeyRight:
		return ebiten.KeyArrowRight
	case KeyUp:
		return ebiten.KeyArrowUp
	case KeyDown:
		return ebiten.KeyArrowDown
	case KeySpace:
		return ebiten.KeySpace
	case KeyEnter:
		return ebiten.KeyEnter
	default:
		return ebiten.KeyEscape
	}
}

// Pressed reports whether the key is currently held.
func (w *Window) Pressed(k Key) bool {
	return ebiten.IsKeyPressed(k.ebiten())
}

// JustPressed reports whether the key went down this tick.
func (w *Window) JustPressed(k Key) bool {
	return inpututil.IsKeyJustPressed(k.ebiten())
}
