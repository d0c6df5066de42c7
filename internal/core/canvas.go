// Package core provides the pixel-level rendering engine: a quadrant canvas
// that packs 2x2 pixel blocks into Unicode block glyphs, a gradient color
// ramp, and low-level drawing helpers. It contains no external dependencies
// (especially no Bubble Tea) to keep the engine pure and testable.
package core

import (
	"math"
	"strings"
)

// Color is a per-pixel color code stored in the canvas.
// 0 is empty, ColorDefault renders with the terminal foreground,
// ColorGray renders bright-black, and codes in [GradientBase,
// GradientBase+GradientSteps) select one of the precomputed gradient stops.
type Color uint8

const (
	// ColorNone marks an empty pixel.
	ColorNone Color = 0
	// ColorDefault renders with the terminal's default foreground.
	ColorDefault Color = 1
	// ColorGray renders as bright-black (ANSI 90).
	ColorGray Color = 2

	// GradientBase is the first color code of the gradient range.
	GradientBase Color = 16
)

// Canvas is a pixel buffer rendered through quadrant glyphs: every text cell
// encodes a 2x2 block of pixels plus one dominant foreground color.
type Canvas struct {
	width  int
	height int
	pixels []Color // Row-major, length width*height
}

// NewCanvas creates a canvas with the given pixel dimensions.
// Negative dimensions are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	width = Max(width, 0)
	height = Max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(width, height int) {
	width = Max(width, 0)
	height = Max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.pixels = make([]Color, width*height)
}

// Set writes a color at the given pixel position.
// Fractional coordinates are floored; out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y float64, color Color) {
	px := int(math.Floor(x))
	py := int(math.Floor(y))
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return
	}
	c.pixels[py*c.width+px] = color
}

// Get returns the color at the given pixel position.
// Out-of-bounds reads return ColorNone.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorNone
	}
	return c.pixels[y*c.width+x]
}

// Clear resets every pixel to ColorNone.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = ColorNone
	}
}

// Lines packs the pixel rows in [minY, maxY) into text lines, one line per
// two pixel rows and one glyph per two pixel columns. minY does not have to
// be even: odd alignment shifts the glyph grid by a single pixel row, which
// is what allows smooth half-line vertical scrolling.
//
// Each glyph is chosen from the quadrant table by the on/off pattern of its
// four pixels, and colored with the dominant (most frequent nonzero) color
// of the block. Color escapes are emitted only on transitions to keep the
// output small; a line that switched away from the default foreground is
// terminated with a reset.
func (c *Canvas) Lines(minY, maxY int) []string {
	startY := Max(minY, 0)
	endY := Min(maxY, c.height)

	lines := make([]string, 0, Max((endY-startY+1)/2, 0))
	for y := startY; y < endY; y += 2 {
		lines = append(lines, c.packRow(y))
	}
	return lines
}

// packRow renders the two pixel rows starting at y as a single text line.
func (c *Canvas) packRow(y int) string {
	var sb strings.Builder
	sb.Grow(c.width/2 + 16)

	active := ColorDefault
	for x := 0; x < c.width; x += 2 {
		tl := c.Get(x, y)
		tr := c.Get(x+1, y)
		bl := c.Get(x, y+1)
		br := c.Get(x+1, y+1)

		glyph := quadrantGlyph(tl, tr, bl, br)
		color := dominantColor(tl, tr, bl, br)

		// An empty block keeps whatever color is active unless a
		// non-default color would bleed into later glyphs.
		want := color
		if want == ColorNone {
			want = ColorDefault
		}
		if want != active {
			sb.WriteString(escapeFor(want))
			active = want
		}
		sb.WriteRune(glyph)
	}
	if active != ColorDefault {
		sb.WriteString(escReset)
	}
	return sb.String()
}

// dominantColor picks the most frequent nonzero color of a 2x2 block.
// Ties break toward the numerically larger code so gradient and gray pixels
// win over the plain default; the raster output depends on this exact rule.
func dominantColor(colors ...Color) Color {
	var best Color
	bestCount := 0
	for _, candidate := range colors {
		if candidate == ColorNone {
			continue
		}
		count := 0
		for _, other := range colors {
			if other == candidate {
				count++
			}
		}
		if count > bestCount || (count == bestCount && candidate > best) {
			best = candidate
			bestCount = count
		}
	}
	return best
}

const (
	escReset = "\x1b[39m"
	escGray  = "\x1b[90m"
)

// escapeFor returns the ANSI sequence that activates the given color code.
func escapeFor(color Color) string {
	switch {
	case color == ColorGray:
		return escGray
	case color >= GradientBase && color < GradientBase+GradientSteps:
		return gradientSeqs[color-GradientBase]
	default:
		return escReset
	}
}
