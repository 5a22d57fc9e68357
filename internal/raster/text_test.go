package raster

import (
	"math/bits"
	"testing"
)

func glyphBits(f *Font, ch byte) int {
	n := 0
	for _, row := range f.Glyph(ch) {
		n += bits.OnesCount8(row)
	}
	return n
}

func TestTextMatchesGlyphBitmap(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	fb.Text("A", 0, 0, White, 1)

	glyph := Default8x8.Glyph('A')
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := glyph[row]&(1<<col) != 0
			got := fb.At(col, row) == White
			if got != want {
				t.Fatalf("pixel (%d,%d): drawn=%v, bitmap=%v", col, row, got, want)
			}
		}
	}
}

func TestTextScale(t *testing.T) {
	fb1 := NewFrameBuffer(32, 32)
	fb2 := NewFrameBuffer(32, 32)
	fb1.Text("X", 0, 0, White, 1)
	fb2.Text("X", 0, 0, White, 2)

	n1 := countColored(fb1, White)
	n2 := countColored(fb2, White)
	if n2 != n1*4 {
		t.Errorf("scale 2 drew %d pixels, want %d", n2, n1*4)
	}
}

func TestTextAdvance(t *testing.T) {
	fb := NewFrameBuffer(32, 16)
	fb.Text("!!", 0, 0, White, 1)

	// Both cells must contain the same glyph, 8 pixels apart.
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (fb.At(col, row) == White) != (fb.At(col+8, row) == White) {
				t.Fatalf("second cell differs at (%d,%d)", col, row)
			}
		}
	}
}

func TestTextNewline(t *testing.T) {
	single := NewFrameBuffer(32, 32)
	multi := NewFrameBuffer(32, 32)
	single.Text("A", 0, 8, White, 1)
	multi.Text("\nA", 0, 0, White, 1)

	for i := range single.Pix {
		if single.Pix[i] != multi.Pix[i] {
			t.Fatal("newline did not advance to next row at starting column")
		}
	}
}

func TestTextNonASCIIBlank(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	fb.Text("\xff", 0, 0, White, 1)

	if got := countColored(fb, White); got != 0 {
		t.Errorf("code ≥128 drew %d pixels, want blank", got)
	}
	if glyphBits(Default8x8, 200) != 0 {
		t.Error("fallback glyph not blank")
	}
}

func TestTextOffscreenSafe(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	fb.Text("clipped", -100, -100, White, 3)
	fb.Text("clipped", 14, 14, White, 2)
}
