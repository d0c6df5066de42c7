package core

import (
	"fmt"
	"math"
)

// GradientSteps is the number of precomputed gradient colors.
const GradientSteps Color = 32

// gradientStops are the three anchor colors of the decorative ramp.
// The ramp interpolates stop 0 -> 1 over the first half and 1 -> 2 over
// the second half.
var gradientStops = [3][3]float64{
	{255, 138, 0},  // Orange
	{229, 46, 113}, // Pink
	{94, 53, 177},  // Violet
}

// gradientSeqs holds the 32 precomputed truecolor escape sequences.
// Built once at process start, immutable thereafter.
var gradientSeqs = buildGradientSeqs()

func buildGradientSeqs() [GradientSteps]string {
	var seqs [GradientSteps]string
	for i := range seqs {
		t := float64(i) / float64(GradientSteps-1)
		r, g, b := gradientRGB(t)
		seqs[i] = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	return seqs
}

// gradientRGB interpolates the three-stop ramp at t in [0, 1].
func gradientRGB(t float64) (r, g, b int) {
	var from, to [3]float64
	var local float64
	if t < 0.5 {
		from, to = gradientStops[0], gradientStops[1]
		local = t * 2
	} else {
		from, to = gradientStops[1], gradientStops[2]
		local = (t - 0.5) * 2
	}
	r = int(math.Round(from[0] + (to[0]-from[0])*local))
	g = int(math.Round(from[1] + (to[1]-from[1])*local))
	b = int(math.Round(from[2] + (to[2]-from[2])*local))
	return r, g, b
}

// ColorForFraction maps a horizontal fraction in [0, 1] to a gradient
// color code. Out-of-range fractions are clamped.
func ColorForFraction(t float64) Color {
	t = ClampF(t, 0, 1)
	idx := int(t * float64(GradientSteps-1))
	return GradientBase + Color(idx)
}

// GradientSeq returns the escape sequence for a gradient ramp index.
// Used by tests and by chrome that wants to match the in-game ramp.
func GradientSeq(idx int) string {
	idx = Clamp(idx, 0, int(GradientSteps)-1)
	return gradientSeqs[idx]
}
