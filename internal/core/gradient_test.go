package core

import "testing"

func TestGradientEndpoints(t *testing.T) {
	if got := GradientSeq(0); got != "\x1b[38;2;255;138;0m" {
		t.Errorf("First gradient stop = %q, want orange", got)
	}
	if got := GradientSeq(31); got != "\x1b[38;2;94;53;177m" {
		t.Errorf("Last gradient stop = %q, want violet", got)
	}
	// Index clamps instead of panicking
	if GradientSeq(-5) != GradientSeq(0) {
		t.Error("Negative index should clamp to the first stop")
	}
	if GradientSeq(99) != GradientSeq(31) {
		t.Error("Overlarge index should clamp to the last stop")
	}
}

func TestGradientSeqsDistinct(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < int(GradientSteps); i++ {
		seq := GradientSeq(i)
		if prev, dup := seen[seq]; dup {
			t.Errorf("Stops %d and %d share the escape %q", prev, i, seq)
		}
		seen[seq] = i
	}
}

func TestColorForFraction(t *testing.T) {
	if got := ColorForFraction(0); got != GradientBase {
		t.Errorf("ColorForFraction(0) = %d, want %d", got, GradientBase)
	}
	if got := ColorForFraction(1); got != GradientBase+GradientSteps-1 {
		t.Errorf("ColorForFraction(1) = %d, want %d", got, GradientBase+GradientSteps-1)
	}
	if got := ColorForFraction(0.5); got != GradientBase+15 {
		t.Errorf("ColorForFraction(0.5) = %d, want %d", got, GradientBase+15)
	}
	// Out-of-range fractions clamp
	if ColorForFraction(-1) != GradientBase {
		t.Error("Negative fraction should clamp to the ramp start")
	}
	if ColorForFraction(2) != GradientBase+GradientSteps-1 {
		t.Error("Fraction above 1 should clamp to the ramp end")
	}
}

func TestGradientPixelEscape(t *testing.T) {
	// A gradient-colored block must render with its own truecolor escape.
	c := NewCanvas(2, 2)
	c.Set(0, 0, GradientBase+7)
	c.Set(1, 0, GradientBase+7)

	lines := c.Lines(0, 2)
	want := GradientSeq(7) + "▀" + escReset
	if lines[0] != want {
		t.Errorf("Got %q, want %q", lines[0], want)
	}
}

func TestGradientMidpointRGB(t *testing.T) {
	r, g, b := gradientRGB(0.5)
	if r != 229 || g != 46 || b != 113 {
		t.Errorf("Midpoint = (%d,%d,%d), want the pink stop (229,46,113)", r, g, b)
	}
}
