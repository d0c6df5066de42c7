package sprite

import (
	"strings"
	"testing"
)

// square builds an n-by-n sprite filled with one glyph.
func square(n int, glyph string) *Sprite {
	row := strings.Repeat(glyph, n)
	return Decode(strings.TrimSuffix(strings.Repeat(row+"\n", n), "\n"))
}

func box(s *Sprite, x, y float64) Box {
	return Box{Sprite: s, X: x, Y: y, W: s.Width, H: s.Height}
}

func TestCollidesOverlap(t *testing.T) {
	solid := square(10, "█")

	if !Collides(box(solid, 0, 0), box(solid, 5, 5)) {
		t.Error("Overlapping solid squares should collide")
	}
	if !Collides(box(solid, 0, 0), box(solid, 9, 9)) {
		t.Error("One-pixel corner overlap should collide")
	}
}

func TestCollidesSeparatedAndTouching(t *testing.T) {
	solid := square(10, "█")

	if Collides(box(solid, 0, 0), box(solid, 20, 0)) {
		t.Error("Separated squares should not collide")
	}
	// Edge-to-edge contact is a zero-area intersection, not a hit
	if Collides(box(solid, 0, 0), box(solid, 10, 0)) {
		t.Error("Horizontally touching squares should not collide")
	}
	if Collides(box(solid, 0, 0), box(solid, 0, 10)) {
		t.Error("Vertically touching squares should not collide")
	}
	if Collides(box(solid, 0, 0), box(solid, 10, 10)) {
		t.Error("Corner-touching squares should not collide")
	}
}

func TestCollidesLightPixelsNeverSolid(t *testing.T) {
	solid := square(10, "█")
	light := square(10, "░")

	if Collides(box(solid, 0, 0), box(light, 0, 0)) {
		t.Error("Light outline pixels must not register collisions")
	}
	if Collides(box(light, 0, 0), box(light, 0, 0)) {
		t.Error("Two light sprites must never collide")
	}
}

func TestCollidesTransparentGap(t *testing.T) {
	// A hollow square colliding only through its transparent middle.
	hollow := Decode("████\n█  █\n█  █\n████")
	dot := Decode("█")

	if Collides(Box{Sprite: hollow, X: 0, Y: 0, W: 4, H: 4}, box(dot, 1, 1)) {
		t.Error("A pixel inside the hollow interior should not collide")
	}
	if !Collides(Box{Sprite: hollow, X: 0, Y: 0, W: 4, H: 4}, box(dot, 0, 0)) {
		t.Error("A pixel on the hollow border should collide")
	}
}

func TestCollidesSheetSubRectangle(t *testing.T) {
	// A two-frame sheet: left frame dark, right frame light. Collision must
	// test against the selected frame, not the whole sheet.
	sheet := Decode("██░░\n██░░")
	dot := Decode("█")

	dark := Box{Sprite: sheet, X: 0, Y: 0, W: 2, H: 2, SrcX: 0}
	lightFrame := Box{Sprite: sheet, X: 0, Y: 0, W: 2, H: 2, SrcX: 2}

	if !Collides(dark, box(dot, 0, 0)) {
		t.Error("Dark frame should collide")
	}
	if Collides(lightFrame, box(dot, 0, 0)) {
		t.Error("Light frame should not collide even though the sheet has dark pixels")
	}
}

func TestCollidesFractionalOriginSampling(t *testing.T) {
	// The narrow phase samples integer world coordinates. A box whose
	// origin is fractional does not cover the integer point just left of
	// it, so that point must map outside the box instead of resampling
	// its first column.
	dot := Decode("█")

	shifted := Box{Sprite: dot, X: 0.5, Y: 0, W: 1, H: 1}
	if Collides(shifted, box(dot, 0, 0)) {
		t.Error("No integer sample point lies inside both pixels")
	}
	if !Collides(shifted, box(dot, 1, 0)) {
		t.Error("Sample point 1 lies inside both pixels and should collide")
	}

	lowered := Box{Sprite: dot, X: 0, Y: 0.5, W: 1, H: 1}
	if Collides(lowered, box(dot, 0, 0)) {
		t.Error("Vertical fractional origin should behave like the horizontal case")
	}
}

func TestCollidesFractionalPositions(t *testing.T) {
	solid := square(4, "█")

	if !Collides(box(solid, 0.4, 0.4), box(solid, 3.6, 3.6)) {
		t.Error("Fractional overlap should still collide")
	}
	if Collides(box(solid, 0, 0), box(solid, 4.0, 0)) {
		t.Error("Exact edge contact with fractional math should not collide")
	}
}
