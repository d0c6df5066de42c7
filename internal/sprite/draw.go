package sprite

import "github.com/vovakirdan/dinoterm/internal/core"

// Draw paints the source sub-rectangle (srcX, srcY, srcW, srcH) of the
// sprite onto the canvas at (destX, destY) with a single color. Opaque dark
// pixels write the color; opaque light pixels write ColorNone, which lets a
// light outline erase the background under the dark fill. Transparent
// pixels leave the canvas untouched.
func Draw(c *core.Canvas, s *Sprite, destX, destY float64, srcX, srcY, srcW, srcH int, color core.Color) {
	for dy := 0; dy < srcH; dy++ {
		for dx := 0; dx < srcW; dx++ {
			sx, sy := srcX+dx, srcY+dy
			if !s.Opaque(sx, sy) {
				continue
			}
			px := color
			if !s.Solid(sx, sy) {
				px = core.ColorNone
			}
			c.Set(destX+float64(dx), destY+float64(dy), px)
		}
	}
}

// DrawFull paints the whole sprite at (destX, destY) with a single color.
func DrawFull(c *core.Canvas, s *Sprite, destX, destY float64, color core.Color) {
	Draw(c, s, destX, destY, 0, 0, s.Width, s.Height, color)
}

// DrawGradient paints like Draw but colors each dark pixel from the
// gradient ramp by its horizontal fraction across the full sprite width,
// not the sub-rectangle, so clipping never shifts the color wash.
func DrawGradient(c *core.Canvas, s *Sprite, destX, destY float64, srcX, srcY, srcW, srcH int) {
	denom := float64(s.Width - 1)
	if denom <= 0 {
		denom = 1
	}
	for dy := 0; dy < srcH; dy++ {
		for dx := 0; dx < srcW; dx++ {
			sx, sy := srcX+dx, srcY+dy
			if !s.Opaque(sx, sy) {
				continue
			}
			px := core.ColorNone
			if s.Solid(sx, sy) {
				px = core.ColorForFraction(float64(sx) / denom)
			}
			c.Set(destX+float64(dx), destY+float64(dy), px)
		}
	}
}
