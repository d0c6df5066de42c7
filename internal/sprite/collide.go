package sprite

import "math"

// Box describes one collision participant: a sprite instance positioned in
// world space, possibly showing only a sub-rectangle of its sheet.
type Box struct {
	Sprite *Sprite
	X, Y   float64 // World position of the instance's top-left corner
	W, H   int     // Instance dimensions
	SrcX   int     // Source sub-rectangle origin within the sheet
	SrcY   int
}

// Collides reports whether two sprite instances overlap on at least one
// solid pixel. The broad phase intersects the two instance boxes and bails
// out on a degenerate rectangle; the narrow phase then scans every integer
// world coordinate inside the intersection and maps it back into each
// sprite's local source coordinates. A pixel counts iff it is within its
// sprite's bounds, opaque (alpha > 128) and dark (red < 128); light outline
// pixels are never solid. The scan is exact: there is no early-exit
// heuristic beyond the broad-phase rectangle.
func Collides(a, b Box) bool {
	left := math.Max(a.X, b.X)
	right := math.Min(a.X+float64(a.W), b.X+float64(b.W))
	top := math.Max(a.Y, b.Y)
	bottom := math.Min(a.Y+float64(a.H), b.Y+float64(b.H))
	if right-left <= 0 || bottom-top <= 0 {
		return false
	}

	for wy := math.Floor(top); wy < bottom; wy++ {
		for wx := math.Floor(left); wx < right; wx++ {
			// Floor, not truncate: at a fractional origin the first scanned
			// column sits left of the instance and must map to -1, which
			// reads out of bounds, rather than resample column 0.
			ax := a.SrcX + int(math.Floor(wx-a.X))
			ay := a.SrcY + int(math.Floor(wy-a.Y))
			bx := b.SrcX + int(math.Floor(wx-b.X))
			by := b.SrcY + int(math.Floor(wy-b.Y))
			if a.Sprite.Solid(ax, ay) && b.Sprite.Solid(bx, by) {
				return true
			}
		}
	}
	return false
}
