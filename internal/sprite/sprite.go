// Package sprite decodes textual glyph art into RGBA pixel buffers and
// provides sprite drawing and pixel-accurate collision on top of the
// quadrant canvas.
package sprite

import "strings"

// Sprite is an immutable decoded pixel buffer with 4 channels per pixel
// (R, G, B, A in 0..255). Sprites are decoded once from static source text
// and shared read-only for the lifetime of the process.
type Sprite struct {
	Width  int
	Height int
	Pixels []uint8 // RGBA, row-major, length Width*Height*4
}

// Decode turns a textual glyph grid into a sprite. A solid block ('█')
// becomes an opaque dark pixel, a light shade ('░') an opaque light pixel,
// and any other character a fully transparent one. Wholly blank leading and
// trailing lines are trimmed before measuring height; interior blank lines
// are kept. Width is the maximum line length, with short lines padded
// transparent. Empty input decodes to a 0x0 sprite.
func Decode(text string) *Sprite {
	lines := strings.Split(text, "\n")

	// Trim blank lead/tail lines only.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]

	rows := make([][]rune, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	height := len(rows)
	if width == 0 || height == 0 {
		return &Sprite{}
	}

	s := &Sprite{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height*4),
	}
	for y, row := range rows {
		for x, r := range row {
			i := (y*width + x) * 4
			switch r {
			case '█':
				// Opaque dark pixel.
				s.Pixels[i+3] = 255
			case '░':
				// Opaque light pixel.
				s.Pixels[i] = 255
				s.Pixels[i+1] = 255
				s.Pixels[i+2] = 255
				s.Pixels[i+3] = 255
			}
		}
	}
	return s
}

// At returns the RGBA channels at (x, y). Out-of-range reads return a
// fully transparent pixel.
func (s *Sprite) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, 0, 0, 0
	}
	i := (y*s.Width + x) * 4
	return s.Pixels[i], s.Pixels[i+1], s.Pixels[i+2], s.Pixels[i+3]
}

// Opaque reports whether the pixel at (x, y) is visible (alpha > 128).
func (s *Sprite) Opaque(x, y int) bool {
	_, _, _, a := s.At(x, y)
	return a > 128
}

// Solid reports whether the pixel at (x, y) counts for collision: opaque
// and dark. Light outline pixels are visible but never solid.
func (s *Sprite) Solid(x, y int) bool {
	r, _, _, a := s.At(x, y)
	return a > 128 && r < 128
}
