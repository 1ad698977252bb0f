package term

import "image/color"

// brailleBuf is a grid of braille cells, each holding a 2x4 micro-pixel
// mask, the colour of the last pixel set and an optional text rune that
// replaces the mask.
type brailleBuf struct {
	w, h int // in cells
	m    [][]uint8
	fg   [][]color.RGBA
	text [][]rune
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.fg = make([][]color.RGBA, h)
	b.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]color.RGBA, w)
		b.text[i] = make([]rune, w)
	}
	return b
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell, y down).
func (b *brailleBuf) setPixel(mx, my int, c color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
	b.fg[cy][cx] = c
}

func (b *brailleBuf) pixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= b.w || my/4 >= b.h {
		return false
	}
	return b.m[my/4][mx/2]&dotBits[mx%2][my%4] != 0
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) setText(cx, cy int, r rune, c color.RGBA) {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return
	}
	b.text[cy][cx] = r
	b.fg[cy][cx] = c
}

func (b *brailleBuf) clear() {
	for y := 0; y < b.h; y++ {
		clear(b.m[y])
		clear(b.fg[y])
		clear(b.text[y])
	}
}

func (b *brailleBuf) cell(x, y int) rune {
	if r := b.text[y][x]; r != 0 {
		return r
	}
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
