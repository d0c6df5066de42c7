package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dinoterm/internal/config"
)

func TestFrameNilBeforeLoad(t *testing.T) {
	g := New(config.Default(), 1, nil)
	g.SetViewport(80, 24)
	if lines := g.Frame(); lines != nil {
		t.Errorf("Frame before load should be nil, got %d lines", len(lines))
	}
}

func TestFrameNilOnDegenerateViewport(t *testing.T) {
	g := newTestGame(t, 1)
	g.SetViewport(0, 24)
	if g.Frame() != nil {
		t.Error("Frame with zero columns should be nil")
	}
	g.SetViewport(80, 0)
	if g.Frame() != nil {
		t.Error("Frame with zero rows should be nil")
	}
}

func TestFrameLineCount(t *testing.T) {
	g := newTestGame(t, 1)

	for _, size := range [][2]int{{80, 24}, {40, 20}, {120, 35}} {
		g.SetViewport(size[0], size[1])
		lines := g.Frame()
		if len(lines) != size[1] {
			t.Errorf("Viewport %dx%d: got %d lines, want %d", size[0], size[1], len(lines), size[1])
		}
	}
}

func TestViewportFollowsPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	// 24 rows show 48 of the 70 virtual pixel rows; the default window
	// rests on the canvas bottom.
	def := g.canvas.Height() - g.rows*2
	if got := g.viewportMinY(); got != def {
		t.Errorf("Grounded viewport top = %d, want %d", got, def)
	}

	// High in the jump arc the window follows, keeping padding above
	g.playerY = 10
	if got := g.viewportMinY(); got != 10-viewportPad {
		t.Errorf("Airborne viewport top = %d, want %d", got, 10-viewportPad)
	}

	// Near the canvas top the window clamps at zero
	g.playerY = 2
	if got := g.viewportMinY(); got != 0 {
		t.Errorf("Clamped viewport top = %d, want 0", got)
	}

	// The window never scrolls below its resting position
	g.playerY = 1000
	if got := g.viewportMinY(); got != def {
		t.Errorf("Viewport top past the bottom = %d, want %d", got, def)
	}
}

func TestFrameDrawsContent(t *testing.T) {
	g := newTestGame(t, 1)
	lines := g.Frame()

	// The ground line and the idle player guarantee non-blank output.
	blank := true
	for _, line := range lines {
		if strings.Trim(line, " ") != "" {
			blank = false
			break
		}
	}
	if blank {
		t.Error("Frame of a waiting game should not be blank")
	}
}

func TestFrameStableAcrossCalls(t *testing.T) {
	// Frame must be a pure projection of the simulation: rendering twice
	// without ticking gives identical output.
	g := newTestGame(t, 1)
	beginRun(t, g)
	for i := 0; i < 50; i++ {
		g.Tick()
	}

	first := g.Frame()
	second := g.Frame()
	if len(first) != len(second) {
		t.Fatalf("Line counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Line %d differs between renders", i)
		}
	}
}

func TestGroundScrollsWithWorld(t *testing.T) {
	g := newTestGame(t, 1)
	beginRun(t, g)
	before := strings.Join(g.Frame(), "\n")

	// Advance far enough for the ground offset to cross a pattern cell
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	after := strings.Join(g.Frame(), "\n")
	if before == after {
		t.Error("Ground pattern did not move with the world")
	}
}
