package sprite

import "testing"

func TestDecodeBasic(t *testing.T) {
	s := Decode("█ \n ░█")

	if s.Width != 3 || s.Height != 2 {
		t.Fatalf("Decoded %dx%d, want 3x2", s.Width, s.Height)
	}

	// (0,0) solid block: opaque and dark
	if !s.Opaque(0, 0) {
		t.Error("(0,0) should be opaque")
	}
	if !s.Solid(0, 0) {
		t.Error("(0,0) should be solid")
	}

	// (1,0) space: transparent
	if s.Opaque(1, 0) {
		t.Error("(1,0) should be transparent")
	}

	// (1,1) light shade: visible but never solid
	if !s.Opaque(1, 1) {
		t.Error("(1,1) should be opaque")
	}
	if s.Solid(1, 1) {
		t.Error("(1,1) light pixel should not be solid")
	}
	r, g, b, a := s.At(1, 1)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("(1,1) = (%d,%d,%d,%d), want white opaque", r, g, b, a)
	}

	// (2,1) solid block
	if !s.Solid(2, 1) {
		t.Error("(2,1) should be solid")
	}

	// (2,0) is beyond the short first line: padded transparent
	if s.Opaque(2, 0) {
		t.Error("(2,0) short-line padding should be transparent")
	}
}

func TestDecodeTrimsBlankEdgeLines(t *testing.T) {
	s := Decode("\n\n█\n\n")
	if s.Width != 1 || s.Height != 1 {
		t.Errorf("Decoded %dx%d, want 1x1 after trimming blank lines", s.Width, s.Height)
	}

	// Interior blank lines are content, not padding
	s = Decode("█\n\n█")
	if s.Height != 3 {
		t.Errorf("Interior blank line dropped: height %d, want 3", s.Height)
	}
	if s.Opaque(0, 1) {
		t.Error("Interior blank line should decode transparent")
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, text := range []string{"", "\n", "   \n  "} {
		s := Decode(text)
		if s.Width != 0 || s.Height != 0 {
			t.Errorf("Decode(%q) = %dx%d, want 0x0", text, s.Width, s.Height)
		}
	}
}

func TestSpriteOutOfRangeReads(t *testing.T) {
	s := Decode("█")

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		r, g, b, a := s.At(p[0], p[1])
		if r != 0 || g != 0 || b != 0 || a != 0 {
			t.Errorf("At(%d,%d) out of range should be transparent", p[0], p[1])
		}
		if s.Opaque(p[0], p[1]) || s.Solid(p[0], p[1]) {
			t.Errorf("(%d,%d) out of range should be neither opaque nor solid", p[0], p[1])
		}
	}
}
