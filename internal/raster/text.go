package raster

// Text draws s with the default 8×8 font. See TextFont.
func (fb *FrameBuffer) Text(s string, x, y int, c Color, scale int) {
	fb.TextFont(Default8x8, s, x, y, c, scale)
}

// TextFont draws s glyph by glyph, each set bit becoming a scale×scale block
// of pixels. '\n' resets x to the starting column and advances y by one cell.
// Fixed-width cells, no kerning or wrapping.
func (fb *FrameBuffer) TextFont(f *Font, s string, x, y int, c Color, scale int) {
	cell := f.CellSize() * scale
	startX := x
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			y += cell
			x = startX
			continue
		}

		glyph := f.Glyph(s[i])
		for row := 0; row < 8; row++ {
			bits := glyph[row]
			for col := 0; col < 8; col++ {
				if bits&(1<<col) == 0 {
					continue
				}
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						fb.SetPixel(x+col*scale+sx, y+row*scale+sy, c)
					}
				}
			}
		}
		x += cell
	}
}
