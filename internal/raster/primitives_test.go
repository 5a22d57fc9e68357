package raster

import "testing"

func countColored(fb *FrameBuffer, c Color) int {
	n := 0
	for _, px := range fb.Pix {
		if px == c.Packed() {
			n++
		}
	}
	return n
}

func TestLineZeroLength(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.Line(5, 5, 5, 5, White)

	if got := countColored(fb, White); got != 1 {
		t.Errorf("zero-length line drew %d pixels, want 1", got)
	}
	if fb.At(5, 5) != White {
		t.Error("pixel (5,5) not set")
	}
}

func TestLineEndpointSymmetry(t *testing.T) {
	a := NewFrameBuffer(20, 20)
	b := NewFrameBuffer(20, 20)
	a.Line(2, 3, 15, 11, White)
	b.Line(15, 11, 2, 3, White)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("line not symmetric in endpoint order")
		}
	}
}

func TestLineConnected(t *testing.T) {
	fb := NewFrameBuffer(30, 30)
	fb.Line(0, 0, 20, 9, White)

	// Every column of the span must be touched: Bresenham on a shallow line
	// steps x every iteration.
	for x := 0; x <= 20; x++ {
		hit := false
		for y := 0; y < 30; y++ {
			if fb.At(x, y) == White {
				hit = true
				break
			}
		}
		if !hit {
			t.Fatalf("column %d has no pixel", x)
		}
	}
}

func TestLineOffscreenNoPanic(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.Line(-50, -50, 60, 60, White)
	fb.Line(-5, 20, 15, -8, White)
	// Clipping happens per pixel; only in-bounds pixels may be set.
	if fb.At(0, 0) != White {
		t.Error("diagonal through origin missed (0,0)")
	}
}

func TestThickLineZeroLength(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.ThickLine(4, 4, 4, 4, 5, White)
	if got := countColored(fb, White); got != 0 {
		t.Errorf("degenerate thick line drew %d pixels, want 0", got)
	}
}

func TestThickLineWiderThanThin(t *testing.T) {
	thin := NewFrameBuffer(40, 40)
	thick := NewFrameBuffer(40, 40)
	thin.Line(5, 5, 30, 30, White)
	thick.ThickLine(5, 5, 30, 30, 5, White)

	if countColored(thick, White) <= countColored(thin, White) {
		t.Error("thick line no wider than thin line")
	}
}

func TestFillRectScenario(t *testing.T) {
	fb := NewFrameBuffer(50, 50)
	fb.Clear(Black)
	fb.FillRect(10, 10, 20, 20, Red)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			inside := x >= 10 && x < 30 && y >= 10 && y < 30
			got := fb.At(x, y)
			if inside && got != Red {
				t.Fatalf("(%d,%d) = %+v, want red", x, y, got)
			}
			if !inside && got != Black {
				t.Fatalf("(%d,%d) = %+v, want black", x, y, got)
			}
		}
	}
}

func TestRectOutlineOnly(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	fb.Rect(2, 2, 10, 8, White)

	if fb.At(2, 2) != White || fb.At(11, 9) != White {
		t.Error("rect corners not drawn")
	}
	if fb.At(5, 5) == White {
		t.Error("rect interior filled")
	}
}

func TestFillCircleRadiusZero(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillCircle(5, 5, 0, White)

	if got := countColored(fb, White); got > 1 {
		t.Errorf("r=0 circle drew %d pixels, want at most 1", got)
	}
	if fb.At(5, 5) != White {
		t.Error("center pixel not set")
	}
}

func TestFillCircleWithinRadius(t *testing.T) {
	fb := NewFrameBuffer(30, 30)
	fb.FillCircle(15, 15, 5, White)

	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			dx, dy := x-15, y-15
			inside := dx*dx+dy*dy <= 25
			if (fb.At(x, y) == White) != inside {
				t.Fatalf("(%d,%d): inside=%v drawn=%v", x, y, inside, fb.At(x, y) == White)
			}
		}
	}
}

func TestCircleOutlineSymmetry(t *testing.T) {
	fb := NewFrameBuffer(30, 30)
	fb.Circle(15, 15, 8, White)

	// The four axis extremes must be drawn.
	for _, p := range [][2]int{{23, 15}, {7, 15}, {15, 23}, {15, 7}} {
		if fb.At(p[0], p[1]) != White {
			t.Errorf("extreme (%d,%d) not drawn", p[0], p[1])
		}
	}
	if fb.At(15, 15) == White {
		t.Error("circle center drawn for outline")
	}
}

func TestGradientRectEndpoints(t *testing.T) {
	fb := NewFrameBuffer(10, 100)
	fb.GradientRect(0, 0, 10, 100, Black, White, true)

	top := fb.At(5, 0)
	bottom := fb.At(5, 99)
	if top.R > 10 {
		t.Errorf("top of gradient = %+v, want near black", top)
	}
	if bottom.R < 240 {
		t.Errorf("bottom of gradient = %+v, want near white", bottom)
	}
}
